package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/agent-awareness/internal/awareness"
)

func init() {
	identityCmd := &cobra.Command{
		Use:   "identity",
		Short: "Agent self-model",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the agent's identity (defaults fill unset fields)",
		Run:   runIdentityGet,
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update identity fields; omitted fields are left untouched",
		Run:   runIdentitySet,
	}
	setCmd.Flags().String("name", "", "Agent name")
	setCmd.Flags().String("purpose", "", "Agent purpose")
	setCmd.Flags().String("capabilities", "", "Agent capabilities")
	setCmd.Flags().String("limitations", "", "Agent limitations")
	setCmd.Flags().String("personality", "", "Agent personality")

	identityCmd.AddCommand(getCmd, setCmd)
	RootCmd.AddCommand(identityCmd)
}

func runIdentityGet(cmd *cobra.Command, args []string) {
	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	id, err := svc.Identity(cmd.Context())
	if err != nil {
		exitErr("identity get", err)
	}

	b, _ := json.MarshalIndent(id, "", "  ")
	fmt.Println(string(b))
}

func runIdentitySet(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	purpose, _ := cmd.Flags().GetString("purpose")
	capabilities, _ := cmd.Flags().GetString("capabilities")
	limitations, _ := cmd.Flags().GetString("limitations")
	personality, _ := cmd.Flags().GetString("personality")

	s, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	updated, err := svc.SetIdentity(cmd.Context(), awareness.IdentityUpdate{
		Name:         name,
		Purpose:      purpose,
		Capabilities: capabilities,
		Limitations:  limitations,
		Personality:  personality,
	})
	if err != nil {
		exitErr("identity set", err)
	}

	b, _ := json.Marshal(map[string]interface{}{
		"updated": updated,
		"status":  "identity updated",
	})
	fmt.Println(string(b))
}
