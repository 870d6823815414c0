// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-lockr/internal/generator"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *cli) entriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry", "e"},
		Short:   "Manage vault entries",
	}
	cmd.AddCommand(
		c.entriesListCommand(),
		c.entriesAddCommand(),
		c.entriesShowCommand(),
		c.entriesEditCommand(),
		c.entriesDeleteCommand(),
		c.entriesEncryptFieldCommand(),
	)
	return cmd
}

func (c *cli) entriesListCommand() *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := func() error {
				entries, err := c.listEntries(category, search)
				if err != nil {
					return err
				}
				writeEntries(cmd.OutOrStdout(), entries, categoryNames(c.Vault.Categories()))
				return nil
			}
			// notes are encrypted, so searching them needs the passcode
			if search != "" {
				return c.withUnlocked(cmd.Context(), list)
			}
			return list()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category name or id")
	cmd.Flags().StringVar(&search, "search", "", "match title, username or notes")
	return sessionRequired(cmd)
}

func (c *cli) listEntries(category, search string) ([]models.Entry, error) {
	entries := c.Vault.Entries()
	if search != "" {
		entries = c.Vault.Search(search)
	}
	if category == "" {
		return entries, nil
	}

	id, err := resolveCategory(c.Vault.Categories(), category)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return c.Vault.EntriesByCategory(id), nil
	}
	return filterByCategory(entries, id), nil
}

func writeEntries(w io.Writer, entries []models.Entry, categories map[string]string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, helpStyle.Render("No entries."))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "USERNAME", "CATEGORY", "UPDATED")
	for _, e := range entries {
		t.Row(e.ID, e.Title, e.Username, categories[e.CategoryID], e.UpdatedAt.Local().Format("2006-01-02"))
	}
	fmt.Fprintln(w, t.String())
}

// entryFlags are shared by add and edit.
type entryFlags struct {
	title, username, password, category, notes string
	tags                                       []string
	fields, secrets                            []string
	generate                                   bool
}

func (f *entryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "entry title")
	cmd.Flags().StringVar(&f.username, "username", "", "login name")
	cmd.Flags().StringVar(&f.password, "password", "", "password, prompted for when omitted")
	cmd.Flags().BoolVar(&f.generate, "generate", false, "generate a random password")
	cmd.Flags().StringVar(&f.category, "category", "", "category name or id")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free text notes, stored encrypted")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "tag, repeatable")
	cmd.Flags().StringArrayVar(&f.fields, "field", nil, "custom field name=value, repeatable")
	cmd.Flags().StringArrayVar(&f.secrets, "secret", nil, "encrypted custom field name=value, repeatable")
}

func (f *entryFlags) customFields() (models.CustomFields, error) {
	var out models.CustomFields
	for _, group := range []struct {
		values    []string
		encrypted bool
	}{{f.fields, false}, {f.secrets, true}} {
		for _, raw := range group.values {
			name, value, ok := strings.Cut(raw, "=")
			if !ok || strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("%w: %q", errBadFieldFlag, raw)
			}
			out = append(out, models.CustomField{Name: strings.TrimSpace(name), Value: value, IsEncrypted: group.encrypted})
		}
	}
	return out, nil
}

func (c *cli) entriesAddCommand() *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categoryID, err := c.categoryOrDefault(f.category)
			if err != nil {
				return err
			}
			fields, err := f.customFields()
			if err != nil {
				return err
			}

			return c.withUnlocked(cmd.Context(), func() error {
				password, err := c.entryPassword(cmd, &f)
				if err != nil {
					return err
				}

				entry := models.Entry{
					CategoryID:   categoryID,
					Title:        f.title,
					Username:     f.username,
					Password:     password,
					CustomFields: fields,
					Tags:         f.tags,
				}
				if f.notes != "" {
					entry.Notes = &f.notes
				}

				added, err := c.Vault.AddEntry(cmd.Context(), entry)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Added %q (%s).", added.Title, added.ID)))
				return nil
			})
		},
	}
	f.bind(cmd)
	_ = cmd.MarkFlagRequired("title")
	return sessionRequired(cmd)
}

// entryPassword picks the password from the flags, the generator or a prompt.
func (c *cli) entryPassword(cmd *cobra.Command, f *entryFlags) (string, error) {
	switch {
	case f.generate:
		opts := models.DefaultPasswordOptions()
		password, err := generator.Generate(opts)
		if err != nil {
			return "", err
		}
		fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render(fmt.Sprintf("Generated a %d character password.", opts.Length)))
		return password, nil
	case cmd.Flags().Changed("password"):
		return f.password, nil
	default:
		return c.Prompter.Password("Password: ")
	}
}

func (c *cli) entriesShowCommand() *cobra.Command {
	var reveal, copyPassword bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withUnlocked(cmd.Context(), func() error {
				entry, err := c.Vault.Entry(args[0])
				if err != nil {
					return err
				}

				writeEntry(cmd.OutOrStdout(), entry, categoryNames(c.Vault.Categories()), reveal)

				if copyPassword {
					if err = c.Clipboard.Copy(entry.Password); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Password copied to clipboard."))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print secrets instead of masking them")
	cmd.Flags().BoolVar(&copyPassword, "copy", false, "copy the password to the clipboard")
	return sessionRequired(cmd)
}

func writeEntry(w io.Writer, e models.Entry, categories map[string]string, reveal bool) {
	secret := func(s string) string {
		if reveal || s == "" {
			return s
		}
		return masked
	}
	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + value
	}

	lines := []string{
		titleStyle.Render(e.Title),
		row("id", e.ID),
		row("category", categories[e.CategoryID]),
		row("username", e.Username),
		row("password", secret(e.Password)),
	}
	if e.Notes != nil {
		lines = append(lines, row("notes", secret(*e.Notes)))
	}
	for _, f := range e.CustomFields {
		value := f.Value
		if f.IsEncrypted {
			value = secret(value) + " " + labelStyle.Render("(encrypted)")
		}
		lines = append(lines, row(f.Name, value))
	}
	if len(e.Tags) > 0 {
		lines = append(lines, row("tags", strings.Join(e.Tags, ", ")))
	}
	lines = append(lines, row("updated", e.UpdatedAt.Local().Format("2006-01-02 15:04")))

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

func (c *cli) entriesEditCommand() *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an entry; only the given flags are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.NFlag() == 0 {
				return errNothingToUpdate
			}

			return c.withUnlocked(cmd.Context(), func() error {
				entry, err := c.Vault.Entry(args[0])
				if err != nil {
					return err
				}

				if flags.Changed("title") {
					entry.Title = f.title
				}
				if flags.Changed("username") {
					entry.Username = f.username
				}
				if flags.Changed("password") || f.generate {
					if entry.Password, err = c.entryPassword(cmd, &f); err != nil {
						return err
					}
				}
				if flags.Changed("category") {
					if entry.CategoryID, err = resolveCategory(c.Vault.Categories(), f.category); err != nil {
						return err
					}
				}
				if flags.Changed("notes") {
					entry.Notes = nil
					if f.notes != "" {
						entry.Notes = &f.notes
					}
				}
				if flags.Changed("tag") {
					entry.Tags = f.tags
				}
				if flags.Changed("field") || flags.Changed("secret") {
					extra, err := f.customFields()
					if err != nil {
						return err
					}
					entry.CustomFields = append(entry.CustomFields, extra...)
				}

				updated, err := c.Vault.UpdateEntry(cmd.Context(), entry)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Updated %q.", updated.Title)))
				return nil
			})
		},
	}
	f.bind(cmd)
	return sessionRequired(cmd)
}

func (c *cli) entriesDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := c.Vault.Entry(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirmed(c.Prompter, fmt.Sprintf("Delete %q?", entry.Title))
				if err != nil || !ok {
					return err
				}
			}

			if err = c.Vault.DeleteEntry(cmd.Context(), entry.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Deleted %q.", entry.Title)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return sessionRequired(cmd)
}

func (c *cli) entriesEncryptFieldCommand() *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "encrypt-field <id> <field>",
		Short: "Encrypt a custom field, or store it as plain text with --off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withUnlocked(cmd.Context(), func() error {
				entry, err := c.Vault.Entry(args[0])
				if err != nil {
					return err
				}
				fieldID, err := resolveField(entry, args[1])
				if err != nil {
					return err
				}

				if _, err = c.Vault.SetCustomFieldEncrypted(cmd.Context(), entry.ID, fieldID, !off); err != nil {
					return err
				}
				state := "encrypted"
				if off {
					state = "stored as plain text"
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Field %q is now %s.", args[1], state)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "turn encryption off")
	return sessionRequired(cmd)
}

// categoryOrDefault resolves ref, or picks the first category when empty.
func (c *cli) categoryOrDefault(ref string) (string, error) {
	categories := c.Vault.Categories()
	if ref == "" {
		if len(categories) == 0 {
			return "", errUnknownCategory
		}
		return categories[0].ID, nil
	}
	return resolveCategory(categories, ref)
}

// resolveCategory accepts an id or a case-insensitive name.
func resolveCategory(categories []models.Category, ref string) (string, error) {
	for _, cat := range categories {
		if cat.ID == ref {
			return cat.ID, nil
		}
	}
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, ref) {
			return cat.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownCategory, ref)
}

func resolveField(e models.Entry, ref string) (string, error) {
	for _, f := range e.CustomFields {
		if f.ID == ref || strings.EqualFold(f.Name, ref) {
			return f.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownField, ref)
}

func categoryNames(categories []models.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names
}

func filterByCategory(entries []models.Entry, categoryID string) []models.Entry {
	var out []models.Entry
	for _, e := range entries {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}
