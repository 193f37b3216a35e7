package hours

import (
	"github.com/PuerkitoBio/goquery"

	"slugmenu-backend/lib/htmlutil"
	"slugmenu-backend/lib/locations"
)

// ScrapeAll walks the hours page and extracts an HoursList per known
// location. Each location's anchor candidates are tried in order
// until one yields a non-empty result; a location whose anchors all
// come up empty stays empty, never errors.
func ScrapeAll(doc *goquery.Document) AllHours {
	out := AllHours{}
	for _, loc := range locations.All {
		var list HoursList
		for _, anchor := range loc.HoursAnchors {
			list = scrapeAnchor(doc, anchor, loc.HoursStyle)
			if !list.Empty() {
				break
			}
		}
		out[loc.Key] = list
	}
	return out
}

// scrapeAnchor grabs the block of content between a location's anchor
// heading and the next anchored element.
func scrapeAnchor(doc *goquery.Document, anchor string, style locations.HoursStyle) HoursList {
	heading := doc.Find("#" + anchor).First()
	if heading.Length() == 0 {
		return HoursList{}
	}
	content := heading.NextUntil("[id]")

	if style == locations.DiningHours {
		return scrapeDining(content)
	}
	return scrapeTable(content)
}

// dining halls publish day-range headers in <p><strong> with a
// sibling <ul> of hour blocks per header. the two lists are zipped by
// position; a count mismatch means the site's markup changed shape,
// which is reported as empty rather than guessed at.
func scrapeDining(content *goquery.Selection) HoursList {
	var days []string
	content.Filter("p").Each(func(_ int, p *goquery.Selection) {
		if p.Find("strong").Length() == 0 {
			return
		}
		text := htmlutil.Text(p)
		if text != "" {
			days = append(days, text)
		}
	})

	var hours [][]string
	content.Filter("ul").Each(func(_ int, ul *goquery.Selection) {
		var block []string
		ul.Find("li").Each(func(_ int, li *goquery.Selection) {
			text := htmlutil.Text(li)
			if text != "" {
				block = append(block, text)
			}
		})
		hours = append(hours, block)
	})

	if len(days) == 0 || len(days) != len(hours) {
		return HoursList{}
	}
	return HoursList{Days: days, Hours: hours}
}

// cafes and markets publish a two-column (day, hours) table. cells
// are joined pairwise into self-describing lines; an odd cell count
// means the table no longer has the expected shape.
func scrapeTable(content *goquery.Selection) HoursList {
	table := content.Filter("table").AddSelection(content.Find("table")).First()
	if table.Length() == 0 {
		return HoursList{}
	}

	var cells []string
	table.Find("td").Each(func(_ int, td *goquery.Selection) {
		cells = append(cells, htmlutil.Text(td))
	})
	if len(cells) == 0 || len(cells)%2 != 0 {
		return HoursList{}
	}

	var days []string
	for i := 0; i < len(cells); i += 2 {
		days = append(days, cells[i]+": "+cells[i+1])
	}
	return HoursList{Days: days}
}
