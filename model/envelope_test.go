package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryBarcode(t *testing.T) {
	var env RequestEnvelope
	_, ok := env.PrimaryBarcode()
	assert.False(t, ok)
	env.ItemBarcodes = []string{"B1", "B2"}
	b, ok := env.PrimaryBarcode()
	assert.True(t, ok)
	assert.Equal(t, "B1", b)

	env.ItemBarcodes = []string{" ", "", " B2 "}
	b, ok = env.PrimaryBarcode()
	assert.True(t, ok)
	assert.Equal(t, "B2", b)

	env.ItemBarcodes = []string{""}
	_, ok = env.PrimaryBarcode()
	assert.False(t, ok)

	var nilEnv *RequestEnvelope
	_, ok = nilEnv.PrimaryBarcode()
	assert.False(t, ok)
}

func TestBarcodesFiltersBlank(t *testing.T) {
	env := RequestEnvelope{ItemBarcodes: []string{" B1 ", "", "  ", "B2"}}
	assert.Equal(t, []string{"B1", "B2"}, env.Barcodes())
	env.ItemBarcodes = []string{" "}
	assert.Empty(t, env.Barcodes())
}

func TestRequestTypes(t *testing.T) {
	env := RequestEnvelope{RequestType: "edd"}
	assert.True(t, env.IsEddOrBorrowDirect())
	assert.True(t, env.IsRetrievalLike())
	env.RequestType = RequestTypeRecall
	assert.False(t, env.IsRetrievalLike())
	assert.False(t, env.IsEddOrBorrowDirect())
	env.RequestType = "Retrieval"
	assert.True(t, env.IsRetrievalLike())
	assert.False(t, env.IsEddOrBorrowDirect())
}

func TestFailNeverBlank(t *testing.T) {
	var r ResponseItem
	r.Succeed("ok")
	r.Fail("")
	assert.False(t, r.Success)
	assert.Equal(t, DefaultFailureMessage, r.ScreenMessage)
	r.Fail("connection refused")
	assert.Equal(t, "connection refused", r.ScreenMessage)
}
