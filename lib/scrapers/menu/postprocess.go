package menu

import "strings"

// The site lists sized espresso drinks in the wrong order at the
// coffee bars: the Double appears with the wrong neighbor rows so
// Single/Double pairs render swapped. The pattern is narrow on
// purpose, it is a patch for observed menu text and not a general
// reordering algorithm.
func correctSizeOrder(items []Item) {
	for i := 0; i+3 < len(items); i++ {
		double := items[i+1].Name
		single := items[i+3].Name
		if !strings.Contains(double, "Double") || !strings.Contains(single, "Single") {
			continue
		}
		if sizedBase(double, "Double") != sizedBase(single, "Single") {
			continue
		}
		items[i], items[i+2] = items[i+2], items[i]
		items[i+1], items[i+3] = items[i+3], items[i+1]
		i += 3
	}
}

// sizedBase strips the size word and anything after the first comma,
// leaving the drink name the pair is matched on.
func sizedBase(name, size string) string {
	if idx := strings.Index(name, ","); idx >= 0 {
		name = name[:idx]
	}
	name = strings.Replace(name, size, "", 1)
	return strings.TrimSpace(name)
}
