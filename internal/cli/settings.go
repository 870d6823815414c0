package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-lockr/models"
	"github.com/spf13/cobra"
)

func (c *cli) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change account settings",
	}

	cmd.AddCommand(sessionRequired(&cobra.Command{
		Use:   "show",
		Short: "Show settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeSettings(cmd, c.Vault.Settings())
			return nil
		},
	}))

	var autoLock int
	var biometric bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings; only the given flags are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update models.SettingsUpdate
			if cmd.Flags().Changed("auto-lock") {
				update.AutoLockTimer = &autoLock
			}
			if cmd.Flags().Changed("biometric") {
				update.BiometricEnabled = &biometric
			}
			if update.IsEmpty() {
				return errNothingToUpdate
			}

			settings, err := c.Vault.UpdateSettings(cmd.Context(), update)
			if err != nil {
				return err
			}
			writeSettings(cmd, settings)
			return nil
		},
	}
	set.Flags().IntVar(&autoLock, "auto-lock", models.DefaultAutoLockMinutes, "idle minutes before the vault locks, 0 disables")
	set.Flags().BoolVar(&biometric, "biometric", false, "enable biometric unlock on supported devices")
	cmd.AddCommand(sessionRequired(set))

	return cmd
}

func writeSettings(cmd *cobra.Command, s models.UserSettings) {
	autoLock := "off"
	if s.AutoLockTimer > 0 {
		autoLock = strconv.Itoa(s.AutoLockTimer) + " min"
	}
	passcode := "not set"
	if s.MasterPasscodeHash != "" {
		passcode = "set"
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, labelStyle.Render("auto-lock ")+" "+autoLock)
	fmt.Fprintln(w, labelStyle.Render("biometric ")+" "+strconv.FormatBool(s.BiometricEnabled))
	fmt.Fprintln(w, labelStyle.Render("passcode  ")+" "+passcode)
}
