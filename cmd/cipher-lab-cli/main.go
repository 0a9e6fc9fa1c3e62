// Package main is the entry point for the cipher-lab-cli application.
// It initializes the root command and registers the cipher and analysis
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/cipher-lab/cmd/cipher-lab-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cipher-lab-cli",
		Short: "Cipher demonstration CLI tool",
		Long: `cipher-lab-cli demonstrates AES, 3DES, RC4 and SHA-256.
Encrypts and decrypts text in the OpenSSL passphrase format, runs fixed examples,
compares the algorithms in a sortable table and reports brute-force keyspaces.`,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
