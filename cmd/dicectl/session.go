package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/diceroll/internal/diceroller"
	"github.com/KirkDiggler/diceroll/internal/errors"
)

var (
	sessionEntity  string
	sessionContext string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or clear an in-memory roll session",
	Long: `Session commands operate on the roll history kept in memory for the
lifetime of this process. Each invocation of dicectl starts with an
empty session store, so this is a demonstration surface rather than a
persistence feature.`,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the rolls recorded for an entity/context",
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the rolls recorded for an entity/context",
	RunE:  runSessionClear,
}

func init() {
	sessionCmd.PersistentFlags().StringVar(&sessionEntity, "entity", "", "entity ID")
	sessionCmd.PersistentFlags().StringVar(&sessionContext, "context", "", "roll context")
	_ = sessionCmd.MarkPersistentFlagRequired("entity")
	_ = sessionCmd.MarkPersistentFlagRequired("context")

	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	out, err := svc.GetSession(context.Background(), &diceroller.GetSessionInput{
		EntityID: sessionEntity,
		Context:  sessionContext,
	})
	if errors.IsNotFound(err) {
		fmt.Printf("No rolls recorded in session %s/%s\n", sessionEntity, sessionContext)
		return nil
	}
	if err != nil {
		return err
	}

	for i, roll := range out.Session.Rolls {
		fmt.Printf("%d. [%s] %s => %v\n", i+1, roll.ID, roll.Expression.OriginalText, roll.Result.Total)
	}
	fmt.Printf("%d roll(s) in session %s/%s\n", len(out.Session.Rolls), sessionEntity, sessionContext)
	return nil
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	out, err := svc.ClearSession(context.Background(), &diceroller.ClearSessionInput{
		EntityID: sessionEntity,
		Context:  sessionContext,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Cleared %d roll(s) from session %s/%s\n", out.RollsDeleted, sessionEntity, sessionContext)
	return nil
}
