package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "zazzctl",
		Short:         "Administer a Zazz API deployment",
		Long:          "Run database migrations, register API clients and debug signed requests and tokens.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newClientCmd(),
		newSignCmd(),
		newTokenCmd(),
		newKeygenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
