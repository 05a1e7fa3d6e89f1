package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/agent-awareness/internal/store"
)

func init() {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Goal management",
	}

	addGoalCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		Run:   runGoalAdd,
	}
	addGoalCmd.Flags().String("description", "", "Goal description")
	addGoalCmd.Flags().String("status", "active", "Status: active, completed, abandoned")

	goalCmd.AddCommand(addGoalCmd)
	RootCmd.AddCommand(goalCmd)

	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Task management",
	}

	addTaskCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task under a goal",
		Args:  cobra.ExactArgs(1),
		Run:   runTaskAdd,
	}
	addTaskCmd.Flags().Int64P("goal", "g", 0, "Owning goal id (required)")
	addTaskCmd.Flags().IntP("priority", "p", 0, "Task priority (higher sorts first)")
	addTaskCmd.Flags().String("status", "pending", "Status: pending, in_progress, done")
	addTaskCmd.MarkFlagRequired("goal")

	taskCmd.AddCommand(addTaskCmd)
	RootCmd.AddCommand(taskCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) {
	description, _ := cmd.Flags().GetString("description")
	status, _ := cmd.Flags().GetString("status")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	goal, err := s.CreateGoal(cmd.Context(), args[0], description, status)
	if err != nil {
		exitErr("goal add", err)
	}

	b, _ := json.Marshal(goal)
	fmt.Println(string(b))
}

func runTaskAdd(cmd *cobra.Command, args []string) {
	goalID, _ := cmd.Flags().GetInt64("goal")
	priority, _ := cmd.Flags().GetInt("priority")
	status, _ := cmd.Flags().GetString("status")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	task, err := s.CreateTask(cmd.Context(), store.CreateTaskParams{
		Title:    args[0],
		Priority: priority,
		Status:   status,
		GoalID:   goalID,
	})
	if err != nil {
		exitErr("task add", err)
	}

	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}
