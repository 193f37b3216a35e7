package waitz

import (
	"encoding/json"
	"strings"
)

// the live feed emits `"subLocs": false` instead of an empty array
// when a location has no sub-locations. patched in the raw body ahead
// of the typed decode, it is an upstream bug and not a parser concern.
var liveSanitizers = []struct{ from, to string }{
	{`"subLocs":false`, `"subLocs":[]`},
	{`"subLocs": false`, `"subLocs": []`},
}

// the comparison feed embeds presentation tags in its prose fields
var compareSanitizers = []struct{ from, to string }{
	{"<b>", ""},
	{"</b>", ""},
	{"<br>", " "},
	{"<br/>", " "},
}

func sanitize(body []byte, subs []struct{ from, to string }) []byte {
	s := string(body)
	for _, sub := range subs {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}
	return []byte(s)
}

// ParseLive decodes the live feed body into a lookup map keyed by
// normalized location name.
func ParseLive(body []byte) (map[string]Occupancy, error) {
	var feed liveFeed
	err := json.Unmarshal(sanitize(body, liveSanitizers), &feed)
	if err != nil {
		return nil, err
	}

	out := map[string]Occupancy{}
	for _, loc := range feed.Data {
		reported := loc
		if override, ok := subLocationOverride(loc); ok {
			reported = override
		}
		out[NormalizeName(loc.Name)] = Occupancy{
			Busyness:    reported.Busyness,
			People:      reported.People,
			Capacity:    reported.Capacity,
			IsAvailable: reported.IsAvailable,
		}
	}
	return out, nil
}

// Some buildings report occupancy at a finer granularity than the
// display name implies: a "<X> College" entry whose first
// sub-location is "<X> Dining Hall" is really the dining hall's
// sensor, so those figures win.
func subLocationOverride(loc liveLocation) (liveLocation, bool) {
	if len(loc.SubLocs) == 0 {
		return loc, false
	}
	if !strings.HasSuffix(loc.Name, "College") {
		return loc, false
	}
	parent := strings.TrimSpace(strings.TrimSuffix(loc.Name, "College"))
	first := loc.SubLocs[0]
	if strings.HasPrefix(first.Name, parent) && strings.HasSuffix(first.Name, "Dining Hall") {
		return first, true
	}
	return loc, false
}

// ParseCompare decodes the comparison feed body into a lookup map
// keyed the same way as the live map.
func ParseCompare(body []byte) (map[string]Comparison, error) {
	var feed compareFeed
	err := json.Unmarshal(sanitize(body, compareSanitizers), &feed)
	if err != nil {
		return nil, err
	}

	out := map[string]Comparison{}
	for _, loc := range feed.Data {
		var texts [4]string
		for i, c := range loc.Comparison {
			if i >= len(texts) {
				break
			}
			texts[i] = strings.TrimSpace(c.String)
		}
		out[NormalizeName(loc.Name)] = Comparison{
			NextHour:  texts[0],
			Today:     texts[1],
			PeakHours: texts[2],
			Best:      texts[3],
		}
	}
	return out, nil
}
