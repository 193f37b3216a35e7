package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"slugmenu-backend/lib/serviceutil"
)

func init() {
	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteRemoveCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
	rootCmd.AddCommand(favoriteCmd)
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manages the list of favorited menu items.",
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add <item name>",
	Short: "Adds an item to the favorites list.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, closer := newService()
		defer closer()

		err := svc.AddFavorite(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			serviceutil.Fatal("failed to add favorite", err)
		}
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove <item name>",
	Short: "Removes an item from the favorites list.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, closer := newService()
		defer closer()

		err := svc.RemoveFavorite(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			serviceutil.Fatal("failed to remove favorite", err)
		}
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all favorited items.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, closer := newService()
		defer closer()

		favs, err := svc.Favorites(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list favorites", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Favorite"})
		for _, name := range favs {
			t.AppendRow(table.Row{name})
		}
		t.Render()
	},
}
