/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/docchat/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// A .env file is optional for a client tool.
	_ = godotenv.Load()
}
