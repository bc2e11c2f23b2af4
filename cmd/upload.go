/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/docchat/service"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a document without starting a chat",
	Long: `Sends a single PDF to the processing endpoint and prints the
processing summary. Useful for warming up a document before a session.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		filePath, _ := cmd.Flags().GetString("file")
		if filePath == "" {
			log.Fatal("--file is required")
		}

		client := service.NewClient(cfg.BaseURL)
		result, err := client.Upload(context.Background(), filePath, filepath.Base(filePath))
		if err != nil {
			log.Fatalf("Upload failed: %v", err)
		}

		fmt.Printf("Processed %s: %d pages, %d chunks\n", filepath.Base(filePath), result.TotalPages, result.ChunksCreated)
		if result.SearchMethod != "" {
			fmt.Println("Search method:", result.SearchMethod)
		}
		if result.Warning != "" {
			fmt.Println("Warning:", result.Warning)
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringP("file", "f", "", "Path to the PDF to upload")
}
