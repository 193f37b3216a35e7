package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"slugmenu-backend/lib/serviceutil"
)

func init() {
	rootCmd.AddCommand(clearCacheCmd)
}

var clearCacheCmd = &cobra.Command{
	Use:       "clear-cache [menus|hours|busyness|all]",
	Short:     "Drops cached scrape results. Favorites are kept.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"menus", "hours", "busyness", "all"},
	Run: func(cmd *cobra.Command, args []string) {
		svc, closer := newService()
		defer closer()

		var err error
		switch args[0] {
		case "menus":
			err = svc.ClearMenuCache(cmd.Context())
		case "hours":
			err = svc.ClearHoursCache(cmd.Context())
		case "busyness":
			err = svc.ClearBusynessCache(cmd.Context())
		case "all":
			err = svc.ClearAllCaches(cmd.Context())
		}
		if err != nil {
			serviceutil.Fatal("failed to clear cache", err)
		}
		fmt.Println("cleared", args[0])
	},
}
