package main

import (
	"fmt"
	"os"

	"github.com/credvet/credvet/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; API keys usually live there in development
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
