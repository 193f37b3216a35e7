package commands

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"slugmenu-backend/lib/serviceutil"
)

func init() {
	rootCmd.AddCommand(refreshCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refreshes every cached menu, the hours and the busyness snapshot in one go.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, closer := newService()
		defer closer()

		t1 := time.Now()
		err := svc.RefreshAll(cmd.Context())
		t2 := time.Now()

		if err != nil {
			serviceutil.Fatal("refresh finished with failures", err)
		}
		slog.Info("refresh time", "seconds", t2.Sub(t1).Seconds())
	},
}
