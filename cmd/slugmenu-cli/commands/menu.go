package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"slugmenu-backend/lib/locations"
	"slugmenu-backend/lib/scrapers/menu"
	"slugmenu-backend/lib/serviceutil"
	"slugmenu-backend/lib/timezone"
)

var menuDate *string

func init() {
	menuDate = menuCmd.Flags().String("date", "", "Fetch the menu for a specific date (M/D/YYYY) instead of today.")
	rootCmd.AddCommand(menuCmd)
}

var menuCmd = &cobra.Command{
	Use:   "menu <location>",
	Short: "Prints the menu for a dining location. Run 'locations' to list the keys.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, closer := newService()
		defer closer()

		key := args[0]
		var fetched menu.Menu
		var err error
		if *menuDate == "" {
			fetched, err = svc.GetMenu(cmd.Context(), key)
		} else {
			var date time.Time
			date, err = time.ParseInLocation("1/2/2006", *menuDate, timezone.Location)
			if err != nil {
				serviceutil.Fatal("failed to parse --date", err)
			}
			fetched, err = svc.GetMenuForDate(cmd.Context(), key, date)
		}
		if err != nil {
			serviceutil.Fatal("failed to fetch menu", err)
		}

		titles := fetched.PeriodTitles()
		if fetched.Empty() {
			fmt.Println("Closed")
			return
		}
		for i, period := range fetched {
			t := newTable()
			t.AppendHeader(table.Row{titles[i], ""})
			for _, section := range period {
				t.AppendRow(table.Row{strings.ToUpper(section.Title), ""})
				for _, item := range section.Items {
					t.AppendRow(table.Row{item.Name, item.Price})
				}
				t.AppendSeparator()
			}
			t.Render()
		}
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Lists the known dining location keys.",
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable()
		t.AppendHeader(table.Row{"Key", "Name", "Code"})
		for _, loc := range locations.All {
			t.AppendRow(table.Row{loc.Key, loc.Name, loc.Code})
		}
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}
