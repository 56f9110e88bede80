package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickwheel/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the player would run with, after --config and
--difficulty are applied. The output is valid input for --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	data, err := config.Marshal(loadConfig(logger))
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
