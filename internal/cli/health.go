package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lockr/internal/health"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *cli) healthCommand() *cobra.Command {
	return sessionRequired(&cobra.Command{
		Use:   "health",
		Short: "Report weak, reused and old passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withUnlocked(cmd.Context(), func() error {
				report, err := c.Vault.Health(c.Now())
				if err != nil {
					return err
				}
				writeHealth(cmd.OutOrStdout(), report)
				return nil
			})
		},
	})
}

func writeHealth(w io.Writer, r models.HealthReport) {
	score := scoreStyle(r.Score).Render(fmt.Sprintf("%d  %s", r.Score, health.ScoreLabel(r.Score)))
	summary := strings.Join([]string{
		titleStyle.Render("Password health"),
		score,
		labelStyle.Render(fmt.Sprintf("%d passwords, %d strong", r.TotalPasswords, r.StrongPasswords)),
	}, "\n")
	fmt.Fprintln(w, boxStyle.Render(summary))

	if len(r.WeakPasswords) == 0 && len(r.ReusedPasswords) == 0 && len(r.OldPasswords) == 0 {
		fmt.Fprintln(w, okStyle.Render("Nothing to fix."))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ISSUE", "TITLE", "DETAIL")
	for _, e := range r.WeakPasswords {
		t.Row("weak", e.Title, "strength "+strconv.Itoa(health.Strength(e.Password))+"/5")
	}
	for i, g := range r.ReusedPasswords {
		for _, e := range g.Entries {
			t.Row("reused", e.Title, fmt.Sprintf("group %d, %d entries", i+1, len(g.Entries)))
		}
	}
	for _, e := range r.OldPasswords {
		t.Row("old", e.Title, "updated "+e.UpdatedAt.Local().Format("2006-01-02"))
	}
	fmt.Fprintln(w, t.String())
}
