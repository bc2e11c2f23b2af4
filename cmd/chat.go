/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tieubaoca/docchat/service"
	"github.com/tieubaoca/docchat/tui"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [file]",
	Short: "Start an interactive chat session",
	Long: `Starts the interactive TUI. Pass a PDF path to open it right away,
or open one later with /open inside the session.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// The TUI owns stdout, route the log to a file.
		logFile, err := tea.LogToFile(cfg.LogFile, "docchat")
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()

		guard, err := service.NewResourceGuard(cfg.StagingDir)
		if err != nil {
			log.Fatalf("Failed to prepare staging directory: %v", err)
		}

		client := service.NewClient(cfg.BaseURL)
		ctrl := service.NewController(client, guard)
		// Release the staged copy on the way out, whatever state we quit in.
		defer ctrl.Reset()

		var initialFile string
		if len(args) == 1 {
			initialFile = args[0]
		}

		m := tui.New(tui.Config{
			Controller:  ctrl,
			InitialFile: initialFile,
		})
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("Chat session error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
