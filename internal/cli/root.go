// Package cli wires configuration, logging and storage together and
// starts the terminal UI.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/codetrack/internal/config"
	"github.com/interpretive-systems/codetrack/internal/logging"
	"github.com/interpretive-systems/codetrack/internal/prefs"
)

func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "codetrack [route]",
		Short: "Keep track of code tips, libraries and techniques",
		Long: "codetrack: a list of things worth remembering about code, with a detail pane\n" +
			"that sits beside the list on wide terminals. The last session is restored on start.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to config.toml (default: ~/.codetrack/config.toml)")
	root.PersistentFlags().String("data-dir", "", "Directory holding the database and log (overrides the config file)")
	addRunFlags(root)

	root.AddCommand(newRunCmd())
	root.AddCommand(newPrefsCmd())
	return root
}

// env is what every command needs: the resolved configuration, a logger
// and the open database.
type env struct {
	cfg *config.Config
	log *logging.Logger
	db  *sql.DB
}

func openEnv(cmd *cobra.Command, debug bool) (*env, error) {
	cfg, cfgErr := config.Load(mustGetStringFlag(cmd, "config"))
	if cfg == nil {
		return nil, cfgErr
	}
	if dir := mustGetStringFlag(cmd, "data-dir"); dir != "" {
		cfg.DataDir = dir
	}

	log := logging.New(logging.Options{
		Path:       cfg.LogPath(),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Debug:      debug,
	})
	if cfgErr != nil {
		log.Warn("using default configuration", "err", cfgErr)
		fmt.Fprintln(os.Stderr, "warning:", cfgErr)
	}

	db, err := prefs.OpenDB(cfg.StorePath())
	if err != nil {
		log.Error("opening store", "err", err)
		log.Close()
		return nil, err
	}
	log.Debug("store opened", "path", cfg.StorePath())
	return &env{cfg: cfg, log: log, db: db}, nil
}

func (e *env) Close() {
	if err := e.db.Close(); err != nil {
		e.log.Warn("closing store", "err", err)
	}
	e.log.Close()
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
