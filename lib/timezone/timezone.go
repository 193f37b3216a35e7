package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
}

// force timezone to be campus-local because the servers sometimes
// end up on east coast which will cause disturbances when
// manipulating dates based on <time.Time>.Year()/Month()/Day()/Hour()/...
func Now() time.Time {
	return time.Now().In(Location)
}

// DateStamp is the day-resolution cache stamp format.
func DateStamp(t time.Time) string {
	return t.In(Location).Format("2006-01-02")
}

// MinuteStamp is the minute-resolution cache stamp format used for
// near-real-time data.
func MinuteStamp(t time.Time) string {
	return t.In(Location).Format("2006-01-02 15:04")
}

// UpstreamDate formats a date the way the nutrition site's dtdate
// query parameter expects it (no zero padding).
func UpstreamDate(t time.Time) string {
	return t.In(Location).Format("1/2/2006")
}
