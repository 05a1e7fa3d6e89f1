package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Session lifecycle",
	}

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start a session and print the context-recovery briefing",
		Run:   runSessionStart,
	}

	endCmd := &cobra.Command{
		Use:   "end",
		Short: "End a session, persisting a summary",
		Run:   runSessionEnd,
	}
	endCmd.Flags().StringP("summary", "s", "", "What was accomplished this session")

	sessionCmd.AddCommand(startCmd, endCmd)
	RootCmd.AddCommand(sessionCmd)
}

func runSessionStart(cmd *cobra.Command, args []string) {
	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	briefing, err := svc.StartSession(cmd.Context())
	if err != nil {
		exitErr("session start", err)
	}

	b, _ := json.MarshalIndent(briefing, "", "  ")
	fmt.Println(string(b))
}

func runSessionEnd(cmd *cobra.Command, args []string) {
	summary, _ := cmd.Flags().GetString("summary")

	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	receipt, err := svc.EndSession(cmd.Context(), summary)
	if err != nil {
		exitErr("session end", err)
	}

	b, _ := json.Marshal(receipt)
	fmt.Println(string(b))
}
