// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

func (c *cli) shellCommand() *cobra.Command {
	return sessionRequired(&cobra.Command{
		Use:   "shell",
		Short: "Run commands against one unlocked session",
		Long: `Start an interactive prompt. The vault is unlocked once and stays
unlocked between commands until it is locked explicitly, or until the
auto-lock timeout from settings elapses without activity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runShell(cmd)
		},
	})
}

func (c *cli) runShell(cmd *cobra.Command) error {
	ctx := cmd.Context()
	shell := &cli{Deps: c.Deps, shell: true}

	if err := shell.withUnlocked(ctx, func() error { return nil }); err != nil {
		return err
	}
	defer shell.Vault.Lock()

	shell.LockJob.Start(ctx, shell.LockCheckInterval)
	defer shell.LockJob.Stop()

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, helpStyle.Render("Type `help` for commands, `exit` to quit."))

	for {
		line, err := shell.Prompter.Line(shell.prompt())
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		sub := shell.root()
		sub.SetArgs(args)
		sub.SetOut(w)
		sub.SetErr(cmd.ErrOrStderr())
		if err = sub.ExecuteContext(ctx); err != nil {
			fmt.Fprintln(w, errorStyle.Render("Error: "+describe(err)))
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *cli) prompt() string {
	if c.Vault.Locked() {
		return "lockr (locked)> "
	}
	return "lockr> "
}

func (c *cli) lockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Lock the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.Vault.Lock()
			fmt.Fprintln(cmd.OutOrStdout(), "Locked.")
			return nil
		},
	}
}

func (c *cli) unlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withUnlocked(cmd.Context(), func() error {
				fmt.Fprintln(cmd.OutOrStdout(), "Unlocked.")
				return nil
			})
		},
	}
}

// splitArgs splits a shell line into arguments with POSIX-like quoting and
// backslash escapes. Unquoted ; & | < > are refused rather than silently
// cutting the line short.
func splitArgs(line string) ([]string, error) {
	p := shellwords.NewParser()
	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadShellLine, err)
	}
	if p.Position >= 0 {
		return nil, fmt.Errorf("%w: quote values containing ; & | < >", errBadShellLine)
	}
	return args, nil
}
