package main

import (
	"os"

	"github.com/joho/godotenv"

	"resume-parser/internal/cli"
)

func main() {
	// A missing .env file is fine for a CLI.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
