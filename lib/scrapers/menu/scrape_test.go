package menu

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"slugmenu-backend/lib/locations"
)

func parseFixture(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

const periodTableOpen = `<table width="100%" cellspacing="1" cellpadding="0" border="0">`

const diningFixture = `<html><body>` +
	periodTableOpen +
	`<tr><td><span class="shortmenucats">Entrees</span></td></tr>` +
	`<tr><td><span class="shortmenurecipes">Burger</span></td></tr>` +
	`<tr><td><span class="shortmenurecipes">Burger</span></td></tr>` +
	`</table>` +
	periodTableOpen +
	`<tr><td><span class="shortmenucats">Entrees</span></td></tr>` +
	`<tr><td><span class="shortmenurecipes">Burger</span></td></tr>` +
	`<tr><td><span class="shortmenurecipes">Burger</span></td></tr>` +
	`</table>` +
	`</body></html>`

func TestScrapeDiningHallPadsAndDeduplicates(t *testing.T) {
	doc := parseFixture(t, diningFixture)
	m := Scrape(doc, locations.FourMeal)

	require.Len(t, m, 4)

	expectPeriod := MealPeriod{
		{Title: "Entrees", Items: []Item{{Name: "Burger"}}},
	}
	for i := 0; i < 2; i++ {
		if diff := cmp.Diff(expectPeriod, m[i]); diff != "" {
			t.Fatalf("slot %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	require.Empty(t, m[2])
	require.Empty(t, m[3])
}

func TestScrapeClosedLocation(t *testing.T) {
	doc := parseFixture(t, `<html><body><p>closed for break</p></body></html>`)
	m := Scrape(doc, locations.FourMeal)

	require.Empty(t, m)
	require.True(t, m.Empty())
	require.Equal(t, []string{"Closed"}, m.PeriodTitles())
}

const cafeFixture = `<html><body>` +
	periodTableOpen +
	`<tr><td><span class="shortmenucats">Espresso</span></td></tr>` +
	`<tr><td><span class="shortmenurecipes">Latte</span></td></tr>` +
	`<tr><td><span class="shortmenuprices">$4.50</span></td></tr>` +
	`<tr><td><span class="shortmenurecipes">Mocha</span></td></tr>` +
	`<tr><td><span class="shortmenuprices">$5.00</span></td></tr>` +
	`</table>` +
	`</body></html>`

func TestScrapeSingleMenuPairsPrices(t *testing.T) {
	doc := parseFixture(t, cafeFixture)
	m := Scrape(doc, locations.SingleMeal)

	require.Len(t, m, 1)
	expect := MealPeriod{
		{Title: "Espresso", Items: []Item{
			{Name: "Latte", Price: "$4.50"},
			{Name: "Mocha", Price: "$5.00"},
		}},
	}
	if diff := cmp.Diff(expect, m[0]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScrapeTwoMealPadsSecondSlot(t *testing.T) {
	doc := parseFixture(t, cafeFixture)
	m := Scrape(doc, locations.TwoMeal)

	require.Len(t, m, 2)
	require.NotEmpty(t, m[0])
	require.Empty(t, m[1])
}

// no two items within a section may share an identical (name, price)
// pair, but the same name at a different price is legitimate
func TestDeduplicationIsByNameAndPrice(t *testing.T) {
	var items []Item
	appendUnique(&items, Item{Name: "Latte", Price: "$4.50"})
	appendUnique(&items, Item{Name: "Latte", Price: "$5.50"})
	appendUnique(&items, Item{Name: "Latte", Price: "$4.50"})

	require.Equal(t, []Item{
		{Name: "Latte", Price: "$4.50"},
		{Name: "Latte", Price: "$5.50"},
	}, items)
}

func TestSizeOrderCorrection(t *testing.T) {
	items := []Item{
		{Name: "Mocha"},
		{Name: "Double Latte, $3"},
		{Name: "Hot Chocolate"},
		{Name: "Single Latte, $3"},
		{Name: "Chai"},
	}
	correctSizeOrder(items)

	require.Equal(t, []Item{
		{Name: "Hot Chocolate"},
		{Name: "Single Latte, $3"},
		{Name: "Mocha"},
		{Name: "Double Latte, $3"},
		{Name: "Chai"},
	}, items)
}

// pairs with different drink names stay put
func TestSizeOrderCorrectionIgnoresMismatchedPairs(t *testing.T) {
	items := []Item{
		{Name: "Mocha"},
		{Name: "Double Latte, $3"},
		{Name: "Hot Chocolate"},
		{Name: "Single Espresso, $3"},
		{Name: "Chai"},
	}
	before := append([]Item(nil), items...)
	correctSizeOrder(items)
	require.Equal(t, before, items)
}
