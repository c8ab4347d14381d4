package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gobandit",
		Short: "Run contextual bandit experiments",
	}

	cmd.AddCommand(
		runCommand(),
		versionCommand(),
	)

	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gobandit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("gobandit", version)
		},
	}
}
