package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfStoreDay(t *testing.T) {
	// 2024-03-10 19:30 UTC is 01:30 on the 11th in Dhaka
	utc := time.Date(2024, 3, 10, 19, 30, 0, 0, time.UTC)
	start := StartOfStoreDay(utc)

	assert.Equal(t, "2024-03-11", start.Format(time.DateOnly))
	assert.Equal(t, time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC), start.UTC())
}

func TestNowInStoreTZ(t *testing.T) {
	_, offset := NowInStoreTZ().Zone()
	assert.Equal(t, 6*60*60, offset)
}
