package menu

import (
	"html"
	"strings"

	"slugmenu-backend/lib/htmlutil"
)

// The nutrition site appends a disposable-cup fee notice to category
// headers at cafe locations. Two verbatim variants have been observed:
// the original with the misspelled "Ordanance" and the later corrected
// form, which also carries a trailing "--" left over from the site's
// category separator.
const cupFeeLegacy = "*Per City Ordanance, a $0.25 fee will be charged on every beverage sold in a disposable cup*"
const cupFeeCurrent = "*Per City Ordinance, a $0.25 fee will be charged on every beverage sold in a disposable cup*--"

// permanent patches for observed upstream typos, exact substring
// replacements only
var itemCorrections = []struct{ from, to string }{
	{"Iced Match ", "Iced Matcha "},
	{"Cheese Cheese Quesadilla", "Cheese Quesadilla"},
	{"Whiped", "Whipped"},
}

// NormalizeCategory cleans one raw category header token.
func NormalizeCategory(raw string) string {
	s := html.UnescapeString(raw)
	s = htmlutil.CleanText(s)

	s = strings.ReplaceAll(s, cupFeeLegacy, "")
	if strings.Contains(s, cupFeeCurrent) {
		// the corrected form swallows the "--" separator, put the
		// em dash the separator would have produced back
		s = strings.ReplaceAll(s, cupFeeCurrent, "—")
	}
	s = strings.ReplaceAll(s, "--", "—")

	return strings.TrimSpace(s)
}

// NormalizeItem cleans one raw item name token.
func NormalizeItem(raw string) string {
	s := html.UnescapeString(raw)
	s = htmlutil.CleanText(s)
	for _, c := range itemCorrections {
		s = strings.ReplaceAll(s, c.from, c.to)
	}
	return strings.TrimSpace(s)
}

// NormalizePrice cleans one raw price token.
func NormalizePrice(raw string) string {
	s := html.UnescapeString(raw)
	return htmlutil.CleanText(s)
}
