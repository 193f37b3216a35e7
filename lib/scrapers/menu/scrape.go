package menu

import (
	"github.com/PuerkitoBio/goquery"

	"slugmenu-backend/lib/locations"
)

// the upstream markup has no semantic classes on its tables, this
// attribute fingerprint is the only stable anchor for the meal period
// tables
const periodTableSelector = `table[width="100%"][cellspacing="1"][cellpadding="0"][border="0"]`

// Scrape walks a fetched shortmenu page and assembles the menu for a
// location of the given kind. Zero matching tables is not an error,
// it means the location is closed that day.
func Scrape(doc *goquery.Document, kind locations.Kind) Menu {
	tables := doc.Find(periodTableSelector)
	if tables.Length() == 0 {
		return Menu{}
	}

	hasPrices := kind != locations.FourMeal

	out := make(Menu, kind.Periods())
	for i := range out {
		if i < tables.Length() {
			out[i] = assemblePeriod(tables.Eq(i), hasPrices)
		} else {
			out[i] = MealPeriod{}
		}
	}
	return out
}

// assemblePeriod runs the row state machine over one meal period
// table. A category row flushes the open section; an item row either
// appends immediately (dining halls, no price rows) or waits for the
// price row that the site lays out directly after it. Nothing defends
// against an unrelated row between a name and its price, the live
// site has not been observed to produce one.
func assemblePeriod(table *goquery.Selection, hasPrices bool) MealPeriod {
	sections := MealPeriod{}
	currentCategory := ""
	var items []Item
	pendingName := ""

	flush := func() {
		if currentCategory == "" {
			return
		}
		sections = append(sections, Section{
			Title: currentCategory,
			Items: items,
		})
		currentCategory = ""
		items = nil
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if cat := row.Find(".shortmenucats").First(); cat.Length() > 0 {
			flush()
			currentCategory = NormalizeCategory(cat.Text())
			pendingName = ""
			return
		}

		if recipe := row.Find(".shortmenurecipes").First(); recipe.Length() > 0 {
			name := NormalizeItem(recipe.Text())
			if name == "" {
				return
			}
			if hasPrices {
				pendingName = name
				return
			}
			appendUnique(&items, Item{Name: name})
			return
		}

		if price := row.Find(".shortmenuprices").First(); price.Length() > 0 {
			if pendingName == "" {
				return
			}
			appendUnique(&items, Item{
				Name:  pendingName,
				Price: NormalizePrice(price.Text()),
			})
			pendingName = ""
			return
		}

		// rows with neither class are separators, skip them
	})

	if pendingName != "" {
		appendUnique(&items, Item{Name: pendingName})
	}
	flush()

	for i := range sections {
		correctSizeOrder(sections[i].Items)
	}
	return sections
}

// appendUnique drops exact (name, price) duplicates within one
// category, the site repeats rows for some stations. Lists are small
// so the linear scan is fine.
func appendUnique(items *[]Item, item Item) {
	for _, existing := range *items {
		if existing == item {
			return
		}
	}
	*items = append(*items, item)
}
