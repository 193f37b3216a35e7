package hours

import "slugmenu-backend/lib/locations"

// HoursList is a location's operating hours as parallel arrays:
// Days[i] is a day-range label, Hours[i] the hour blocks for that
// range. Cafe and market locations carry self-describing single-line
// entries in Days and leave Hours empty.
type HoursList struct {
	Days  []string   `json:"daysList"`
	Hours [][]string `json:"hoursList"`
}

func (h HoursList) Empty() bool {
	return len(h.Days) == 0
}

// AllHours maps every known location key to its HoursList. The key
// set is always exactly the registry's, never partial.
type AllHours map[string]HoursList

// Normalized returns a copy holding exactly the known location keys,
// defaulting absent ones to empty and dropping unknown ones.
func (a AllHours) Normalized() AllHours {
	out := AllHours{}
	for _, key := range locations.Keys() {
		out[key] = a[key]
	}
	return out
}

func (a AllHours) Empty() bool {
	for _, h := range a {
		if !h.Empty() {
			return false
		}
	}
	return true
}
