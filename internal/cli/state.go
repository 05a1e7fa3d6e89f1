package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Metacognitive monitoring",
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record a metacognitive snapshot and get advisory warnings",
		Run:   runStateRecord,
	}
	recordCmd.Flags().Float64P("confidence", "c", 0.5, "Confidence in current approach (0-1)")
	recordCmd.Flags().Float64P("load", "l", 0.5, "Cognitive load of current task (0-1)")
	recordCmd.Flags().Float64P("quality", "q", 0.5, "Self-assessed reasoning quality (0-1)")
	recordCmd.Flags().StringP("notes", "n", "", "Observations about the thinking process")

	stateCmd.AddCommand(recordCmd)
	RootCmd.AddCommand(stateCmd)
}

func runStateRecord(cmd *cobra.Command, args []string) {
	confidence, _ := cmd.Flags().GetFloat64("confidence")
	load, _ := cmd.Flags().GetFloat64("load")
	quality, _ := cmd.Flags().GetFloat64("quality")
	notes, _ := cmd.Flags().GetString("notes")

	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	receipt, err := svc.RecordState(cmd.Context(), confidence, load, quality, notes)
	if err != nil {
		exitErr("state record", err)
	}

	b, _ := json.Marshal(receipt)
	fmt.Println(string(b))
}
