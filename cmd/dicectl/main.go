// Package main is the entry point for the dicectl command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dice "github.com/KirkDiggler/diceroll"
	"github.com/KirkDiggler/diceroll/internal/dice/session"
	"github.com/KirkDiggler/diceroll/internal/diceroller"
	"github.com/KirkDiggler/diceroll/internal/pkg/clock"
	"github.com/KirkDiggler/diceroll/internal/pkg/idgen"
)

var rootCmd = &cobra.Command{
	Use:   "dicectl",
	Short: "Dice expression roller",
	Long:  `dicectl parses and rolls dice expressions, reports their statistics, and inspects in-memory roll sessions.`,
}

// svc is the shared orchestration facade for the process. The session
// store lives only as long as this invocation: every run starts empty.
var svc diceroller.Service

func main() {
	built, err := diceroller.New(&diceroller.Config{
		SessionRepo: session.NewMemoryRepository(),
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clock.New(),
		RandSource:  dice.NewCryptoSource(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	svc = built

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(sessionCmd)
}
