package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/interpretive-systems/codetrack/internal/appstate"
	"github.com/interpretive-systems/codetrack/internal/items"
	"github.com/interpretive-systems/codetrack/internal/prefs"
	"github.com/interpretive-systems/codetrack/internal/tui"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [route]",
		Short: "Open the TUI, restoring the last session unless a route is given",
		Long: "Routes: list, help, add, options, edit/<id>. A route replaces the\n" +
			"restored session; preferences are still restored.",
		Args: cobra.MaximumNArgs(1),
		RunE: runTUI,
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("route", "", "Route to open instead of the saved session")
	cmd.Flags().Bool("debug", false, "Write debug records to the log")
}

func runTUI(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	e, err := openEnv(cmd, debug)
	if err != nil {
		return err
	}
	defer e.Close()

	store, err := prefs.NewSQLiteStore(e.db)
	if err != nil {
		return fmt.Errorf("prepare preferences: %w", err)
	}
	coll, err := items.NewCollection(e.db, e.log.Component("items"))
	if err != nil {
		return fmt.Errorf("prepare items: %w", err)
	}

	route := mustGetStringFlag(cmd, "route")
	if len(args) > 0 {
		route = args[0]
	}
	e.log.Info("starting", "route", route, "data", e.cfg.DataDir)

	model := tui.New(appstate.New(), store, coll, e.log, tui.Options{
		Route: route,
		Theme: e.cfg.UI.Theme,
		Debug: debug,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	// A hangup closes the terminal without a key press; save first.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		if _, ok := <-hup; ok {
			p.Send(tui.SaveMsg{Quit: true})
		}
	}()

	_, runErr := p.Run()
	signal.Stop(hup)
	close(hup)

	// SIGTERM ends the program without a final update, so save here too.
	// Saving twice writes the same values.
	if err := model.Save(); err != nil {
		e.log.Warn("final save failed", "err", err)
	}
	if runErr != nil {
		return fmt.Errorf("run: %w", runErr)
	}
	if err := model.Err(); err != nil {
		return err
	}
	e.log.Info("exited")
	return nil
}
