package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	dice "github.com/KirkDiggler/diceroll"
	"github.com/KirkDiggler/diceroll/internal/diceroller"
)

var (
	rollEntity  string
	rollContext string
	rollVars    map[string]string
)

var rollCmd = &cobra.Command{
	Use:   "roll <notation>",
	Short: "Parse and roll a dice expression",
	Long: `Roll parses and rolls a dice expression, printing the individual
dice values, the kept values when a keep clause discarded dice, the
success count, any critical flags, the comparison result, and the
total. Examples:

  dicectl roll "4d6 keep 3 highest"
  dicectl roll "1d20 advantage + 5 >= 15 crit 20"
  dicectl roll "3d6+%bonus%" --var bonus=2 --entity char_123 --context attack`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&rollEntity, "entity", "", "entity ID to record this roll against (requires --context)")
	rollCmd.Flags().StringVar(&rollContext, "context", "", "roll context to record this roll under (requires --entity)")
	rollCmd.Flags().StringToStringVar(&rollVars, "var", nil, "placeholder value, repeatable (name=value)")
}

func runRoll(cmd *cobra.Command, args []string) error {
	notation := args[0]
	variables, err := parseVars(rollVars)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if rollEntity != "" || rollContext != "" {
		if rollEntity == "" || rollContext == "" {
			return fmt.Errorf("--entity and --context must be used together")
		}
		out, err := svc.RollAndRecord(ctx, &diceroller.RollAndRecordInput{
			EntityID:   rollEntity,
			Context:    rollContext,
			Expression: notation,
			Variables:  variables,
		})
		if err != nil {
			return err
		}
		printRollResult(out.Result)
		fmt.Printf("Recorded to session %s/%s (%d rolls total)\n", rollEntity, rollContext, len(out.Session.Rolls))
		return nil
	}

	out, err := svc.Roll(ctx, &diceroller.RollInput{Expression: notation, Variables: variables})
	if err != nil {
		return err
	}
	printRollResult(out.Result)
	return nil
}

func printRollResult(result *dice.RollResult) {
	fmt.Printf("Dice: %v\n", result.DiceValues)

	if len(result.DiscardedIndices) > 0 {
		fmt.Printf("Kept: %v\n", keptValues(result))
	}
	if result.SuccessCount != nil {
		fmt.Printf("Successes: %d\n", *result.SuccessCount)
	}
	if result.IsCriticalSuccess {
		fmt.Println("Critical success!")
	}
	if result.IsCriticalFailure {
		fmt.Println("Critical failure!")
	}
	if result.IsSuccess != nil {
		if *result.IsSuccess {
			fmt.Println("Result: success")
		} else {
			fmt.Println("Result: failure")
		}
	}

	fmt.Printf("Total: %v\n", result.Total)
}

func keptValues(result *dice.RollResult) []int {
	kept := make([]int, 0, len(result.DiceValues))
	for i, v := range result.DiceValues {
		if result.KeptIndices[i] {
			kept = append(kept, v)
		}
	}
	return kept
}
