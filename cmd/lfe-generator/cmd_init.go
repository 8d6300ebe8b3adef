package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"log-format-enforcer/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			f := config.Default()
			f.Fields = []config.Field{{Name: "user"}, {Name: "action"}}

			if err := config.WriteFile(f, path); err != nil {
				return err
			}

			logger.Info("Wrote config", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "lfe.yaml", "Path of the config file to create")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
