package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/cmd/zazzctl/ui"
	"github.com/zazzlife/zazz-api/internal/client"
)

func newClientCmd() *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Manage API clients allowed to sign requests",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a client and print its signing key",
		RunE:  runClientCreate,
	}
	createCmd.Flags().String("name", "", "Client name (prompted when omitted)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, db *bun.DB) error {
				clients, err := client.NewRepository(db).List(ctx)
				if err != nil {
					return err
				}
				ui.PrintClients(clients)
				return nil
			})
		},
	}

	clientCmd.AddCommand(
		createCmd,
		listCmd,
		newSetActiveCmd("enable", "Allow a client to sign requests again", true),
		newSetActiveCmd("disable", "Reject every request signed by a client", false),
	)
	return clientCmd
}

func newSetActiveCmd(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <client-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid client id %q", args[0])
			}

			return withDB(cmd.Context(), func(ctx context.Context, db *bun.DB) error {
				if err := client.NewRepository(db).SetActive(ctx, id, active); err != nil {
					return err
				}
				ui.PrintSuccess(fmt.Sprintf("Client %d %sd", id, use))
				return nil
			})
		},
	}
}

func runClientCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	name = strings.TrimSpace(name)

	if name == "" {
		var err error
		if name, err = ui.RunClientForm(); err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
	}
	if err := validateClientName(name); err != nil {
		return err
	}

	key, err := client.GenerateSigningKey()
	if err != nil {
		return err
	}

	return withDB(cmd.Context(), func(ctx context.Context, db *bun.DB) error {
		c, err := client.NewRepository(db).Create(ctx, name, key)
		if err != nil {
			return err
		}
		ui.PrintClientCreated(c)
		return nil
	})
}

// validateClientName mirrors the limits of the oauth_clients table
func validateClientName(name string) error {
	if name == "" {
		return fmt.Errorf("client name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("client name must be at most 100 bytes")
	}
	return nil
}
