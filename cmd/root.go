package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeassist/internal/config"
)

var (
	cfgFile string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "codeassist",
	Short: "Convert, debug and review code through a language model",
	Long: `codeassist is a small gateway in front of a chat-completion API. It
translates code between languages, debugs it, and checks it against
free-form quality criteria, over HTTP, MCP, or straight from the terminal.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
