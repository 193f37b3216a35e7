package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"slugmenu-backend/lib/locations"
	"slugmenu-backend/lib/serviceutil"
)

func init() {
	rootCmd.AddCommand(hoursCmd)
}

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Prints the operating hours of every dining location.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, closer := newService()
		defer closer()

		all, err := svc.GetHours(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch hours", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Location", "Days", "Hours"})
		for _, loc := range locations.All {
			list := all[loc.Key]
			if list.Empty() {
				t.AppendRow(table.Row{loc.Name, "unknown", ""})
				continue
			}
			for i, days := range list.Days {
				name := ""
				if i == 0 {
					name = loc.Name
				}
				blocks := ""
				if i < len(list.Hours) {
					blocks = strings.Join(list.Hours[i], ", ")
				}
				t.AppendRow(table.Row{name, days, blocks})
			}
			t.AppendSeparator()
		}
		t.Render()
	},
}
