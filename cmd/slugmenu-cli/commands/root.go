package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"slugmenu-backend/lib/restyutil"
	"slugmenu-backend/lib/scrapers/hours"
	"slugmenu-backend/lib/scrapers/menu"
	"slugmenu-backend/lib/scrapers/waitz"
	"slugmenu-backend/lib/serviceutil"
	"slugmenu-backend/lib/sqliteutil"
	"slugmenu-backend/lib/telemetry"
	"slugmenu-backend/services/menus"
	"slugmenu-backend/services/menus/db"
)

var verbose *bool
var dbPath *string

var rootCmd = &cobra.Command{
	Use:   "slugmenu-cli",
	Short: "slugmenu-cli scrapes and caches UCSC dining menus, hours and busyness.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
		if *verbose {
			menu.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/menu"))
			hours.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/hours"))
			waitz.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/waitz"))
		}
	},
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and request dumps.")
	dbPath = rootCmd.PersistentFlags().String("db", "slugmenu.db", "The database to cache scrape results in.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService() (*menus.Service, func()) {
	database, err := sqliteutil.OpenDB(db.Schema, *dbPath)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	svc := menus.NewService(database, menus.Sources{
		Menu:     menu.NewClient(menu.ClientOptions{}),
		Hours:    hours.NewClient(hours.ClientOptions{}),
		Busyness: waitz.NewClient(waitz.ClientOptions{}),
	})
	return svc, func() { database.Close() }
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
