package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/agent-awareness/internal/awareness"
)

func init() {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show environment facts (platform, host, time, timezone)",
		Run:   runEnv,
	}

	RootCmd.AddCommand(cmd)
}

func runEnv(cmd *cobra.Command, args []string) {
	info := awareness.HostEnv{}.Info()
	b, _ := json.MarshalIndent(info, "", "  ")
	fmt.Println(string(b))
}
