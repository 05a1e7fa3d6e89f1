package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	gapCmd := &cobra.Command{
		Use:   "gap",
		Short: "Knowledge gap tracking",
	}

	recordCmd := &cobra.Command{
		Use:   "record [domain] [description]",
		Short: "Record something the agent doesn't know but should",
		Args:  cobra.ExactArgs(2),
		Run:   runGapRecord,
	}
	recordCmd.Flags().Float64P("severity", "s", 0.5, "How critical the gap is (0.0 minor, 1.0 critical)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded gaps, most severe first",
		Run:   runGapList,
	}
	listCmd.Flags().Float64("min-severity", 0.0, "Only gaps at or above this severity")

	gapCmd.AddCommand(recordCmd, listCmd)
	RootCmd.AddCommand(gapCmd)
}

func runGapRecord(cmd *cobra.Command, args []string) {
	severity, _ := cmd.Flags().GetFloat64("severity")

	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	receipt, err := svc.RecordGap(cmd.Context(), args[0], args[1], severity)
	if err != nil {
		exitErr("gap record", err)
	}

	b, _ := json.Marshal(receipt)
	fmt.Println(string(b))
}

func runGapList(cmd *cobra.Command, args []string) {
	minSeverity, _ := cmd.Flags().GetFloat64("min-severity")

	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	gaps, err := svc.ListGaps(cmd.Context(), minSeverity)
	if err != nil {
		exitErr("gap list", err)
	}

	b, _ := json.MarshalIndent(gaps, "", "  ")
	fmt.Println(string(b))
}
