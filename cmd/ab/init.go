package main

import (
	"fmt"

	"github.com/jacksmith/ab/internal/cli"
	"github.com/jacksmith/ab/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new address book",
	Long: `Initialize a new address book in the current directory (or --dir).

Creates the .ab/ directory with an empty contacts.yaml.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := storage.Init(rootDir)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized address book in %s\n", cli.Green(s.AbPath()))
	return nil
}
