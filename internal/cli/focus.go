package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/agent-awareness/internal/store"
)

func init() {
	focusCmd := &cobra.Command{
		Use:   "focus",
		Short: "Working context (what's on the agent's mind)",
	}

	setCmd := &cobra.Command{
		Use:   "set [key] [content]",
		Short: "Set a transient working-context entry",
		Args:  cobra.ExactArgs(2),
		Run:   runFocusSet,
	}
	setCmd.Flags().IntP("priority", "p", 0, "Entry priority (higher sorts first)")
	setCmd.Flags().String("ttl", "1h", "Time to live, e.g. 7d, 24h, 30m, 60s")

	focusCmd.AddCommand(setCmd)
	RootCmd.AddCommand(focusCmd)
}

func runFocusSet(cmd *cobra.Command, args []string) {
	priority, _ := cmd.Flags().GetInt("priority")
	ttl, _ := cmd.Flags().GetString("ttl")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entry, err := s.PutWorkingEntry(cmd.Context(), store.PutWorkingEntryParams{
		Key:      args[0],
		Content:  args[1],
		Priority: priority,
		TTL:      ttl,
	})
	if err != nil {
		exitErr("focus set", err)
	}

	b, _ := json.Marshal(entry)
	fmt.Println(string(b))
}
