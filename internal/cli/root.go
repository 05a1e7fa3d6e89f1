// Package cli implements the agent-awareness CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rcliao/agent-awareness/internal/awareness"
	"github.com/rcliao/agent-awareness/internal/store"
)

var (
	dbPath  string
	verbose bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "agent-awareness",
	Short: "Self, situational, and environmental awareness for AI agents",
	Long: "An awareness state store for AI agents: identity, knowledge gaps, session continuity,\n" +
		"action outcomes, and metacognitive monitoring. SQLite-backed, single binary, JSON out.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $AGENT_AWARENESS_DB or ~/.agent-awareness/awareness.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("AGENT_AWARENESS_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".agent-awareness", "awareness.db")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath(), newLogger())
}

func openService() (*store.SQLiteStore, *awareness.Service, error) {
	log := newLogger()
	s, err := store.NewSQLiteStore(getDBPath(), log)
	if err != nil {
		return nil, nil, err
	}
	return s, awareness.New(s, nil, log), nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
