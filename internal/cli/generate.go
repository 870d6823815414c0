package cli

import (
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/generator"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/spf13/cobra"
)

func (c *cli) generateCommand() *cobra.Command {
	opts := models.DefaultPasswordOptions()
	var noUpper, noLower, noDigits, noSymbols, copyIt bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Uppercase = !noUpper
			opts.Lowercase = !noLower
			opts.Numbers = !noDigits
			opts.Symbols = !noSymbols

			password, err := generator.Generate(opts)
			if err != nil {
				return err
			}

			if copyIt {
				if err = c.Clipboard.Copy(password); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Password copied to clipboard."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Length, "length", "l", opts.Length, "password length")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "leave out uppercase letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "leave out lowercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "leave out digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "leave out symbols")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "copy instead of printing")
	return cmd
}
