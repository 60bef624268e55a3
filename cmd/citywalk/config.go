package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/citywalk/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the animation would use (after --config and
--tick) and prints it as YAML. The output is a valid config file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadSceneConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
