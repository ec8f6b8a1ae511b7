package helpers

import (
	"time"
	_ "time/tzdata"
)

// StoreTimezone is the zone that defines the store's calendar day
const StoreTimezone = "Asia/Dhaka"

// StoreLocation is the loaded StoreTimezone. Bangladesh has no DST, so a
// fixed +06:00 offset is an exact fallback.
var StoreLocation = loadStoreLocation()

func loadStoreLocation() *time.Location {
	loc, err := time.LoadLocation(StoreTimezone)
	if err != nil {
		return time.FixedZone("BST", 6*60*60)
	}
	return loc
}

// NowInStoreTZ returns the current time in the store's zone
func NowInStoreTZ() time.Time {
	return time.Now().In(StoreLocation)
}

// StartOfStoreDay returns midnight of t's calendar day in the store's zone
func StartOfStoreDay(t time.Time) time.Time {
	local := t.In(StoreLocation)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, StoreLocation)
}
