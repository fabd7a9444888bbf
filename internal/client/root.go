// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-sync/models"
)

const (
	groupLocal  = "local"
	groupRemote = "remote"
)

// SetupFunc builds the collaborators of command from its raw arguments
// (config flags first, then positional ones). The returned cleanup is
// called once the command is done; it must not be nil when err is nil.
type SetupFunc func(ctx context.Context, command string, args []string) (deps Dependencies, cleanup func(), err error)

// NewRootCommand returns the taskctl command tree. Flag parsing is left to
// setup so that the config flags keep their single-dash form.
func NewRootCommand(build models.AppBuildInfo, setup SetupFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskctl",
		Short: "Keep local task lists in sync with the task service",
		Long: `taskctl edits task lists in a local SQLite file and reconciles them
with the task service. Local commands work offline; every change is
uploaded by the next sync or push.

Config flags (-server, -login, -password, -account, -d, -c, ...) go right
after the command name, before its arguments.`,
		Version:       build.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddGroup(
		&cobra.Group{ID: groupLocal, Title: "Local commands:"},
		&cobra.Group{ID: groupRemote, Title: "Sync commands:"},
	)

	for name, cmd := range commands {
		root.AddCommand(newSubcommand(name, cmd, setup))
	}

	return root
}

func newSubcommand(name string, cmd command, setup SetupFunc) *cobra.Command {
	sub := &cobra.Command{
		Use:                strings.TrimSpace(name + " " + cmd.args),
		Short:              cmd.short,
		DisableFlagParsing: true,
		RunE: func(c *cobra.Command, args []string) error {
			deps, cleanup, err := setup(c.Context(), name, args)
			if err != nil {
				return err
			}
			defer cleanup()

			if deps.Out == nil {
				deps.Out = c.OutOrStdout()
			}

			app, err := NewApp(name, deps)
			if err != nil {
				return err
			}

			err = app.RunContext(c.Context())
			if IsUsage(err) {
				c.PrintErrln("usage: taskctl " + c.Use)
			}
			return err
		},
	}

	switch {
	case cmd.remote:
		sub.GroupID = groupRemote
	case cmd.local:
		sub.GroupID = groupLocal
	}

	return sub
}
