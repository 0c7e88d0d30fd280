package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/cli"
)

func main() {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
