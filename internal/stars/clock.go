package stars

import "time"

// timeLayout is the date/time layout the export uses for both zones.
const timeLayout = "2006/01/02 15:04:05"

// offsetFromHouse is the fixed shift between the house zone and the
// second header timestamp. The legacy format renders "ET" as exactly
// fifteen hours behind house time, with no DST lookup.
const offsetFromHouse = -15 * time.Hour

// Clock renders the hand timestamp in the two header zones.
type Clock struct {
	HouseZone    *time.Location
	HouseAbbrev  string
	OffsetAbbrev string
}

// DefaultClock returns the house clock the export format was defined
// against: AEST (UTC+10) with a fixed-offset ET fifteen hours behind.
func DefaultClock() Clock {
	return Clock{
		HouseZone:    time.FixedZone("AEST", 10*60*60),
		HouseAbbrev:  "AEST",
		OffsetAbbrev: "ET",
	}
}

// Format renders the instant as the house-zone string and the
// offset-zone string, each suffixed with its zone abbreviation.
func (c Clock) Format(t time.Time) (house, offset string) {
	ht := t.In(c.HouseZone)
	house = ht.Format(timeLayout) + " " + c.HouseAbbrev
	offset = ht.Add(offsetFromHouse).Format(timeLayout) + " " + c.OffsetAbbrev
	return house, offset
}
