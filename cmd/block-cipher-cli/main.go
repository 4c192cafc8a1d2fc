// Package main is the entry point for the block-cipher-cli application.
// It initializes the root command, registers the block cipher sub-commands
// (key generation, key cooking, single-block encryption/decryption), then
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "block_cipher_service/cmd/block-cipher-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "block-cipher-cli",
		Short: "Rijndael/AES block cipher CLI tool",
		Long: `block-cipher-cli is a command-line tool around the Rijndael/AES cipher core.
It generates raw keys, expands them into cooked round-key schedules and
encrypts or decrypts single 16-byte blocks.

It is a cipher primitive front end, not a file encryption tool: padding,
chaining modes and IV handling are deliberately out of scope.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitBlockCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize block cipher commands: %w", err)
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
