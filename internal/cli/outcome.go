package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	outcomeCmd := &cobra.Command{
		Use:   "outcome",
		Short: "Action outcome tracking",
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record the outcome of an action for learning",
		Run:   runOutcomeRecord,
	}
	recordCmd.Flags().StringP("action", "a", "", "What was attempted (required)")
	recordCmd.Flags().StringP("expected", "e", "", "What was expected to happen")
	recordCmd.Flags().String("actual", "", "What actually happened")
	recordCmd.Flags().Float64P("score", "s", 0.5, "Success score (0.0 failure, 1.0 perfect)")
	recordCmd.Flags().StringP("context", "c", "", "Additional context")
	recordCmd.MarkFlagRequired("action")

	similarCmd := &cobra.Command{
		Use:   "similar [description]",
		Short: "Find similar past actions and their outcomes",
		Args:  cobra.MinimumNArgs(1),
		Run:   runOutcomeSimilar,
	}
	similarCmd.Flags().IntP("limit", "l", 5, "Max results")

	outcomeCmd.AddCommand(recordCmd, similarCmd)
	RootCmd.AddCommand(outcomeCmd)
}

func runOutcomeRecord(cmd *cobra.Command, args []string) {
	action, _ := cmd.Flags().GetString("action")
	expected, _ := cmd.Flags().GetString("expected")
	actual, _ := cmd.Flags().GetString("actual")
	score, _ := cmd.Flags().GetFloat64("score")
	taskContext, _ := cmd.Flags().GetString("context")

	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	receipt, err := svc.RecordOutcome(cmd.Context(), action, expected, actual, score, taskContext)
	if err != nil {
		exitErr("outcome record", err)
	}

	b, _ := json.Marshal(receipt)
	fmt.Println(string(b))
}

func runOutcomeSimilar(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	description := strings.Join(args, " ")

	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := svc.SimilarActions(cmd.Context(), description, limit)
	if err != nil {
		exitErr("outcome similar", err)
	}

	b, _ := json.MarshalIndent(results, "", "  ")
	fmt.Println(string(b))
}
