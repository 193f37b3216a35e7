package commands

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"slugmenu-backend/lib/serviceutil"
)

func init() {
	rootCmd.AddCommand(busynessCmd)
}

var busynessCmd = &cobra.Command{
	Use:   "busyness",
	Short: "Prints live occupancy for campus dining locations.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, closer := newService()
		defer closer()

		snapshot, err := svc.GetBusyness(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch busyness", err)
		}

		names := make([]string, 0, len(snapshot.Live))
		for name := range snapshot.Live {
			names = append(names, name)
		}
		sort.Strings(names)

		t := newTable()
		t.AppendHeader(table.Row{"Location", "Busyness", "People", "Today"})
		for _, name := range names {
			occ := snapshot.Live[name]
			if !occ.IsAvailable {
				t.AppendRow(table.Row{name, "closed", "", ""})
				continue
			}
			t.AppendRow(table.Row{
				name,
				fmt.Sprintf("%d%%", occ.Busyness),
				fmt.Sprintf("%d/%d", occ.People, occ.Capacity),
				snapshot.Compare[name].Today,
			})
		}
		t.Render()
	},
}
