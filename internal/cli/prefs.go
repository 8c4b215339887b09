package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/codetrack/internal/prefs"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show the saved session and preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			store, err := prefs.NewSQLiteStore(e.db)
			if err != nil {
				return err
			}
			all, err := store.All()
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintf(out, "%s=%s\n", k, all[k])
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the saved session and preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			store, err := prefs.NewSQLiteStore(e.db)
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			e.log.Info("preferences cleared")
			fmt.Fprintln(cmd.OutOrStdout(), "preferences cleared")
			return nil
		},
	})
	return cmd
}
