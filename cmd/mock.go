/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/tieubaoca/docchat/handler"
)

// mockCmd represents the mock command
var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Serve stub endpoints for offline use",
	Long: `Serves fake /api/upload and /api/chat endpoints on a local port so
the client can be tried without a real document service.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = cfg.MockPort
		}

		uploadHandler := handler.NewMockUploadHandler(os.TempDir())
		chatHandler := handler.NewMockChatHandler()

		router := gin.Default()
		api := router.Group("/api")
		{
			api.POST("/upload", uploadHandler.HandleUpload)
			api.POST("/chat", chatHandler.HandleChat)
		}

		log.Printf("Starting mock document service on port %s...\n", port)
		if err := router.Run(":" + port); err != nil {
			log.Fatal("Mock server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mockCmd)
	mockCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
}
