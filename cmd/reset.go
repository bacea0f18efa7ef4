package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newResetCmd(rt *runtime) *cobra.Command {
	c := &cobra.Command{
		Use:   "reset",
		Short: "Delete recorded progress and LLM events",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rt.dbPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "This deletes %s. Re-run with --yes to confirm.\n", path)
				return nil
			}

			removed := 0
			for _, p := range []string{path, path + "-wal", path + "-shm"} {
				err := os.Remove(p)
				switch {
				case err == nil:
					removed++
				case !errors.Is(err, os.ErrNotExist):
					return fmt.Errorf("remove %s: %w", p, err)
				}
			}
			rt.log.Info("reset progress", zap.String("path", path), zap.Int("files", removed))
			if removed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to reset.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress deleted.")
			return nil
		},
	}
	c.Flags().Bool("yes", false, "Confirm deletion")
	return c
}
