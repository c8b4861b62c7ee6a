package main

import (
	"github.com/spf13/cobra"

	"minish/internal/config"
	"minish/internal/shell"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "minish",
	Short: "A small interactive command interpreter",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		s, err := shell.New(cfg)
		if err != nil {
			return err
		}

		return s.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yml", "config path")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
