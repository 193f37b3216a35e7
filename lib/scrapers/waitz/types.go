package waitz

// Occupancy is one location's live busyness figures.
type Occupancy struct {
	Busyness    int  `json:"busyness"`
	People      int  `json:"people"`
	Capacity    int  `json:"capacity"`
	IsAvailable bool `json:"isAvailable"`
}

// Comparison is the feed's prose comparison for one location.
type Comparison struct {
	NextHour  string `json:"nextHour"`
	Today     string `json:"today"`
	PeakHours string `json:"peakHours"`
	// "best location to go" text, or a singleton note when the feed
	// only tracks one location in a group
	Best string `json:"best"`
}

// Snapshot pairs the two feeds, both keyed by normalized location
// name so lookups across them always agree.
type Snapshot struct {
	Live    map[string]Occupancy  `json:"live"`
	Compare map[string]Comparison `json:"compare"`
}

// wire shapes of the upstream feeds

type liveFeed struct {
	Data []liveLocation `json:"data"`
}

type liveLocation struct {
	Name        string         `json:"name"`
	Busyness    int            `json:"busyness"`
	People      int            `json:"people"`
	Capacity    int            `json:"capacity"`
	IsAvailable bool           `json:"isAvailable"`
	SubLocs     []liveLocation `json:"subLocs"`
}

type compareFeed struct {
	Data []compareLocation `json:"data"`
}

type compareLocation struct {
	Name       string `json:"name"`
	Comparison []struct {
		Trend  string `json:"trend"`
		String string `json:"string"`
	} `json:"comparison"`
}
