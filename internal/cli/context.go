package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Show the current situational context",
		Long:  "Active goals, pending and in-progress tasks, recent significant events, and live working context.",
		Run:   runContext,
	}

	RootCmd.AddCommand(cmd)
}

func runContext(cmd *cobra.Command, args []string) {
	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snap, err := svc.CurrentContext(cmd.Context())
	if err != nil {
		exitErr("context", err)
	}

	b, _ := json.MarshalIndent(snap, "", "  ")
	fmt.Println(string(b))
}
