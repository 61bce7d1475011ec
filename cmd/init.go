package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeassist/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize codeassist configuration with an interactive wizard",
	Long:  `Runs an interactive wizard and writes the result to the --config path (.codeassist.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
