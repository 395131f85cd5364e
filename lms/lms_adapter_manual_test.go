package lms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManualAdapterEchoes(t *testing.T) {
	ad := CreateLmsAdapterManual()
	co, err := ad.CheckOutItem(appCtx, "B1", "P1")
	assert.NoError(t, err)
	assert.True(t, co.Success)
	assert.Equal(t, "B1", co.ItemBarcode)

	hold, err := ad.PlaceHold(appCtx, HoldParams{ItemBarcode: "B1", PickupLocation: "lb", TrackingId: "T"})
	assert.NoError(t, err)
	assert.True(t, hold.Success)
	assert.Equal(t, "lb", hold.PickupLocation)
	assert.Equal(t, "T", hold.TrackingId)

	refile, err := ad.RefileItem(appCtx, "B1")
	assert.NoError(t, err)
	assert.True(t, refile.Success)

	ok, err := ad.ValidatePatron(appCtx, "PUL", "P1")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, _ = ad.ValidatePatron(appCtx, "PUL", "")
	assert.False(t, ok)
}
