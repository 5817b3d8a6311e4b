package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shopsites/internal/sitegen/config"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the generated output tree",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := os.RemoveAll(cfg.Paths.Output); err != nil {
		return fmt.Errorf("removing %s: %w", cfg.Paths.Output, err)
	}

	fmt.Printf("Removed %s\n", cfg.Paths.Output)
	return nil
}
