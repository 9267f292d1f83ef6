package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/segeval/internal/config"
)

var configInitPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage segeval configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configInitPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get user home directory: %w", err)
			}
			dir := filepath.Join(home, ".segeval")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			path = filepath.Join(dir, "config.yaml")
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "where to write the config (default: ~/.segeval/config.yaml)")
	configCmd.AddCommand(configInitCmd)
}
