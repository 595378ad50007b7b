package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"lotsim/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter configuration file",
	Long:  `Writes the built-in default simulation configuration to a JSON file (default: config.json) as a starting point for editing.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.json"
		if len(args) == 1 {
			path = args[0]
		}

		if !initForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
		}

		data, err := json.MarshalIndent(config.Default(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal default config: %w", err)
		}
		data = append(data, '\n')

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		log.Info().Str("path", path).Msg("Wrote starter configuration")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
