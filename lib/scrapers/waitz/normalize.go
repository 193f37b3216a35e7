package waitz

import "strings"

// the feed's full college names, abbreviated the way the rest of the
// system refers to them
var nameSubstitutions = []struct{ from, to string }{
	{" / ", "/"},
	{"College 9", "Nine"},
	{"John R Lewis", "Lewis"},
	{"John R. Lewis", "Lewis"},
}

// NormalizeName maps a raw feed location name onto the key space
// shared by the live and comparison maps. Applied identically on both
// feeds so lookups never miss on formatting.
func NormalizeName(raw string) string {
	s := raw

	// drop a leading building qualifier ("McHenry - Cafe" style)
	if idx := strings.LastIndex(s, " - "); idx >= 0 {
		s = s[idx+3:]
	}

	for _, sub := range nameSubstitutions {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}

	s = strings.TrimSuffix(s, " Dining Hall")
	s = strings.TrimSuffix(s, " College")

	return strings.TrimSpace(s)
}
