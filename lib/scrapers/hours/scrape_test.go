package hours

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
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

const diningBlock = `<h3 id="cowellstev">Cowell/Stevenson</h3>
<p><strong>Monday - Friday</strong></p>
<ul><li>Breakfast: 7:00-11:00 AM</li><li>Dinner: 5:00-8:00 PM</li></ul>
<p><strong>Saturday - Sunday</strong></p>
<ul><li>Brunch: 10:00 AM-2:00 PM</li></ul>
<h3 id="next">Next Location</h3>`

func TestScrapeDiningHours(t *testing.T) {
	doc := parseFixture(t, `<html><body>`+diningBlock+`</body></html>`)

	list := scrapeAnchor(doc, "cowellstev", locations.DiningHours)

	require.Equal(t, []string{"Monday - Friday", "Saturday - Sunday"}, list.Days)
	require.Equal(t, [][]string{
		{"Breakfast: 7:00-11:00 AM", "Dinner: 5:00-8:00 PM"},
		{"Brunch: 10:00 AM-2:00 PM"},
	}, list.Hours)
}

func TestScrapeDiningHoursCountMismatch(t *testing.T) {
	// two day headers but only one hour block: markup changed shape,
	// expect empty rather than a bad zip
	doc := parseFixture(t, `<html><body>
<h3 id="cowellstev">Cowell/Stevenson</h3>
<p><strong>Monday - Friday</strong></p>
<p><strong>Saturday - Sunday</strong></p>
<ul><li>Breakfast: 7:00-11:00 AM</li></ul>
</body></html>`)

	list := scrapeAnchor(doc, "cowellstev", locations.DiningHours)
	require.True(t, list.Empty())
}

const cafeBlock = `<h3 id="perkbaskin">Perk: Baskin</h3>
<table>
<tr><td>Monday - Friday</td><td>8:00 AM - 5:00 PM</td></tr>
<tr><td>Saturday - Sunday</td><td>Closed</td></tr>
</table>`

func TestScrapeCafeHours(t *testing.T) {
	doc := parseFixture(t, `<html><body>`+cafeBlock+`</body></html>`)

	list := scrapeAnchor(doc, "perkbaskin", locations.TableHours)

	require.Equal(t, []string{
		"Monday - Friday: 8:00 AM - 5:00 PM",
		"Saturday - Sunday: Closed",
	}, list.Days)
	require.Empty(t, list.Hours)
}

func TestScrapeCafeHoursOddCellCount(t *testing.T) {
	doc := parseFixture(t, `<html><body>
<h3 id="perkbaskin">Perk: Baskin</h3>
<table><tr><td>Monday - Friday</td><td>8:00 AM - 5:00 PM</td></tr><tr><td>Saturday</td></tr></table>
</body></html>`)

	list := scrapeAnchor(doc, "perkbaskin", locations.TableHours)
	require.True(t, list.Empty())
}

// the origin site renames anchor ids across redesigns, so the
// registry carries alternates tried in order
func TestScrapeAllUsesAlternateAnchor(t *testing.T) {
	doc := parseFixture(t, `<html><body>
<h3 id="cowell-stevenson">Cowell/Stevenson</h3>
<p><strong>Monday - Friday</strong></p>
<ul><li>Breakfast: 7:00-11:00 AM</li></ul>
</body></html>`)

	all := ScrapeAll(doc)

	require.Equal(t, []string{"Monday - Friday"}, all["cowellstev"].Days)
}

func TestScrapeAllHasExactlyKnownKeys(t *testing.T) {
	doc := parseFixture(t, `<html><body></body></html>`)
	all := ScrapeAll(doc)

	require.Len(t, all, len(locations.All))
	for _, key := range locations.Keys() {
		_, ok := all[key]
		require.True(t, ok, key)
	}
}

func TestDefaultLiteral(t *testing.T) {
	all := Default()

	require.Len(t, all, len(locations.All))
	for _, key := range locations.Keys() {
		require.False(t, all[key].Empty(), "fallback hours for %s", key)
	}

	// dining halls carry parallel arrays, cafes only day lines
	require.Len(t, all["ninelewis"].Hours, len(all["ninelewis"].Days))
	require.Empty(t, all["perkbe"].Hours)
}

func TestNormalizedDropsUnknownAndDefaultsAbsent(t *testing.T) {
	a := AllHours{
		"cowellstev": {Days: []string{"Monday"}, Hours: [][]string{{"8-5"}}},
		"bogus":      {Days: []string{"Never"}},
	}
	n := a.Normalized()

	require.Len(t, n, len(locations.All))
	_, hasBogus := n["bogus"]
	require.False(t, hasBogus)
	require.True(t, n["ninelewis"].Empty())
	require.Equal(t, []string{"Monday"}, n["cowellstev"].Days)
}
