package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/diceroll/internal/diceroller"
)

var statsVars map[string]string

var statsCmd = &cobra.Command{
	Use:   "stats <notation>",
	Short: "Parse and statistically analyze a dice expression without rolling",
	Long: `Stats parses a dice expression and prints its minimum, maximum, and
expected value, computed without rolling a single die. Examples:

  dicectl stats "3d6+5"
  dicectl stats "1d20 advantage"`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringToStringVar(&statsVars, "var", nil, "placeholder value, repeatable (name=value)")
}

func runStats(cmd *cobra.Command, args []string) error {
	notation := args[0]
	variables, err := parseVars(statsVars)
	if err != nil {
		return err
	}

	out, err := svc.Parse(context.Background(), &diceroller.ParseInput{Expression: notation, Variables: variables})
	if err != nil {
		return err
	}

	stats := out.Expression.Statistics
	fmt.Printf("Minimum:  %v\n", stats.Minimum)
	fmt.Printf("Maximum:  %v\n", stats.Maximum)
	fmt.Printf("Expected: %v\n", stats.Expected)
	return nil
}
