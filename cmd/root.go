/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/docchat/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docchat",
	Short: "Chat with a PDF document from the terminal",
	Long: `docchat is a terminal client for a document question-answering service.

Point it at a running service, open a PDF and ask questions about its
content. Answers come back with page citations you can jump to.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.docchat.yaml)")
	rootCmd.PersistentFlags().StringP("base-url", "u", config.DefaultBaseURL, "Base URL of the document service")
}

// loadConfig resolves the effective configuration: file and env first, then
// an explicit --base-url flag on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("base-url") {
		baseURL, _ := cmd.Flags().GetString("base-url")
		cfg.BaseURL = baseURL
	}
	return cfg, nil
}
