package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-lockr/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *cli) categoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "c"},
		Short:   "Manage categories",
	}
	cmd.AddCommand(
		c.categoriesListCommand(),
		c.categoriesAddCommand(),
		c.categoriesRenameCommand(),
		c.categoriesDeleteCommand(),
	)
	return cmd
}

func (c *cli) categoriesListCommand() *cobra.Command {
	return sessionRequired(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "NAME", "ICON", "ENTRIES")
			for _, cat := range c.Vault.Categories() {
				t.Row(cat.ID, cat.Name, cat.Icon, strconv.Itoa(cat.EntryCount))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	})
}

func (c *cli) categoriesAddCommand() *cobra.Command {
	var icon, color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := c.Vault.AddCategory(cmd.Context(), models.Category{
				Name:  args[0],
				Icon:  icon,
				Color: color,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Added category %q (%s).", created.Name, created.ID)))
			return nil
		},
	}
	cmd.Flags().StringVar(&icon, "icon", "Folder", "icon name")
	cmd.Flags().StringVar(&color, "color", "", "display colour")
	return sessionRequired(cmd)
}

func (c *cli) categoriesRenameCommand() *cobra.Command {
	return sessionRequired(&cobra.Command{
		Use:   "rename <category> <new-name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.findCategory(args[0])
			if err != nil {
				return err
			}

			cat.Name = args[1]
			if _, err = c.Vault.UpdateCategory(cmd.Context(), cat); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Renamed to %q.", args[1])))
			return nil
		},
	})
}

func (c *cli) categoriesDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete a category together with its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.findCategory(args[0])
			if err != nil {
				return err
			}
			if !yes {
				question := fmt.Sprintf("Delete %q and its %d entries?", cat.Name, cat.EntryCount)
				ok, err := confirmed(c.Prompter, question)
				if err != nil || !ok {
					return err
				}
			}

			if err = c.Vault.DeleteCategory(cmd.Context(), cat.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Deleted category %q.", cat.Name)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return sessionRequired(cmd)
}

func (c *cli) findCategory(ref string) (models.Category, error) {
	categories := c.Vault.Categories()
	id, err := resolveCategory(categories, ref)
	if err != nil {
		return models.Category{}, err
	}
	for _, cat := range categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return models.Category{}, errUnknownCategory
}
