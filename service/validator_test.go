package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/model"
	"github.com/indexdata/circbroker/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func catalogItem(barcode string, status int32, code string, bibIds ...int64) catalog.Item {
	item := catalog.Item{Barcode: barcode, AvailabilityStatusId: status, CustomerCode: code, OwningInstitution: "PUL"}
	for _, id := range bibIds {
		item.Bibliographics = append(item.Bibliographics, catalog.Bibliographic{BibliographicId: id})
	}
	return item
}

// newCatalogLookup knows the delivery location PB: items coded PA may go there, items coded
// QK have no restrictions and may not.
func newCatalogLookup() *mocks.MockCatalogLookup {
	lookup := new(mocks.MockCatalogLookup)
	lookup.On("ItemStatus", model.ItemStatusIdAvailable).Return("Available", nil).Maybe()
	lookup.On("ItemStatus", model.ItemStatusIdNotAvailable).Return("NOT AVAILABLE", nil).Maybe()
	lookup.On("FindByCode", "PB").Return(customerCode("PB", "PB"), nil).Maybe()
	lookup.On("FindByCode", "PA").Return(customerCode("PA", "PA,PB,QK"), nil).Maybe()
	lookup.On("FindByCode", "QK").Return(customerCode("QK", ""), nil).Maybe()
	return lookup
}

func newValidator(lookup *mocks.MockCatalogLookup) *ItemValidator {
	return NewItemValidator(lookup, NewDeliveryValidator(lookup))
}

func request(requestType string, barcodes ...string) *model.RequestEnvelope {
	return &model.RequestEnvelope{
		RequestingInstitution: "PUL",
		ItemOwningInstitution: "PUL",
		ItemBarcodes:          barcodes,
		DeliveryLocation:      "PB",
		RequestType:           requestType,
	}
}

func assertRejected(t *testing.T, reason string, out Outcome) {
	t.Helper()
	assert.False(t, out.Valid)
	assert.Equal(t, reason, out.Reason)
	assert.Equal(t, http.StatusBadRequest, out.Status)
}

func TestValidateNoBarcodes(t *testing.T) {
	lookup := new(mocks.MockCatalogLookup)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, " ", ""))
	assert.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, http.StatusOK, out.Status)
	lookup.AssertNotCalled(t, "FindByBarcodes", mock.Anything)
}

func TestValidateSingleNotFound(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1"))
	assert.NoError(t, err)
	assertRejected(t, model.WrongItemBarcode, out)
}

func TestValidateSingleUnavailable(t *testing.T) {
	for _, rt := range []string{model.RequestTypeRetrieval, "edd", model.RequestTypeBorrowDirect} {
		lookup := newCatalogLookup()
		lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{catalogItem("B1", 2, "PA", 1)}, nil)
		out, err := newValidator(lookup).Validate(appCtx, request(rt, "B1"))
		assert.NoError(t, err)
		assertRejected(t, model.RetrievalNotForUnavailableItem, out)
	}
}

func TestValidateSingleRecallAvailable(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{catalogItem("B1", 1, "PA", 1)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRecall, "B1"))
	assert.NoError(t, err)
	assertRejected(t, model.RecallNotForAvailableItem, out)
}

func TestValidateSingleRecallUnavailableChecksDelivery(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{catalogItem("B1", 2, "PA", 1)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRecall, "B1"))
	assert.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, model.ValidRequest, out.Reason)
}

func TestValidateSingleDelivery(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{catalogItem("B1", 1, "PA", 1)}, nil)
	lookup.On("FindByBarcodes", []string{"B2"}).Return([]catalog.Item{catalogItem("B2", 1, "QK", 1)}, nil)
	lookup.On("FindByCode", "ZZ").Return(nil, nil)
	v := newValidator(lookup)

	out, err := v.Validate(appCtx, request(model.RequestTypeRetrieval, "B1"))
	assert.NoError(t, err)
	assert.Equal(t, Outcome{Valid: true, Reason: model.ValidRequest, Status: http.StatusOK}, out)

	out, err = v.Validate(appCtx, request(model.RequestTypeRetrieval, "B2"))
	assert.NoError(t, err)
	assertRejected(t, model.InvalidDeliveryCode, out)

	env := request(model.RequestTypeRetrieval, "B1")
	env.DeliveryLocation = "ZZ"
	out, err = v.Validate(appCtx, env)
	assert.NoError(t, err)
	assertRejected(t, model.InvalidCustomerCode, out)
}

func TestValidateSingleEddSkipsDelivery(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B2"}).Return([]catalog.Item{catalogItem("B2", 1, "QK", 1)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeEdd, "B2"))
	assert.NoError(t, err)
	assert.True(t, out.Valid)
	lookup.AssertNotCalled(t, "FindByCode", mock.Anything)
}

func TestValidateLookupErrors(t *testing.T) {
	lookup := new(mocks.MockCatalogLookup)
	lookup.On("FindByBarcodes", []string{"B1"}).Return(nil, errors.New("db down"))
	_, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1"))
	assert.ErrorContains(t, err, "db down")

	lookup = new(mocks.MockCatalogLookup)
	lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{catalogItem("B1", 1, "PA", 1)}, nil)
	lookup.On("ItemStatus", int32(1)).Return("", errors.New("status down"))
	_, err = newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1"))
	assert.ErrorContains(t, err, "status down")
}

func TestValidateMultiValid(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1", "B2"}).
		Return([]catalog.Item{catalogItem("B1", 1, "PA", 7), catalogItem("B2", 1, "PA", 7)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1", "B2"))
	assert.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, model.ValidRequest, out.Reason)
}

func TestValidateMultiFailFast(t *testing.T) {
	lookup := newCatalogLookup()
	// B3 carries a customer code the lookup does not know; evaluating it would fail the mock
	lookup.On("FindByBarcodes", []string{"B1", "B2", "B3"}).
		Return([]catalog.Item{catalogItem("B1", 1, "PA", 7), catalogItem("B2", 2, "PA", 7), catalogItem("B3", 1, "ZZ", 7)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1", "B2", "B3"))
	assert.NoError(t, err)
	assertRejected(t, model.InvalidItemBarcode, out)
	lookup.AssertCalled(t, "FindByCode", "PA")
	lookup.AssertNotCalled(t, "FindByCode", "ZZ")
}

func TestValidateMultiRecallAvailable(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1", "B2"}).
		Return([]catalog.Item{catalogItem("B1", 2, "PA", 7), catalogItem("B2", 1, "PA", 7)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRecall, "B1", "B2"))
	assert.NoError(t, err)
	assertRejected(t, model.RecallNotForAvailableItem, out)
}

func TestValidateMultiDifferentBib(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1", "B2"}).
		Return([]catalog.Item{catalogItem("B1", 1, "PA", 7), catalogItem("B2", 1, "PA", 8)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1", "B2"))
	assert.NoError(t, err)
	assertRejected(t, model.ItemBarcodeWithDifferentBib, out)
}

func TestValidateMultiDeliveryRejections(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1", "B2"}).
		Return([]catalog.Item{catalogItem("B1", 1, "PA", 7), catalogItem("B2", 1, "QK", 7)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1", "B2"))
	assert.NoError(t, err)
	assertRejected(t, model.InvalidDeliveryCode, out)

	lookup.On("FindByCode", "ZZ").Return(nil, nil)
	env := request(model.RequestTypeRetrieval, "B1", "B2")
	env.DeliveryLocation = "ZZ"
	out, err = newValidator(lookup).Validate(appCtx, env)
	assert.NoError(t, err)
	assertRejected(t, model.InvalidCustomerCode, out)
}

func TestValidateMultiFollowsInputOrder(t *testing.T) {
	lookup := newCatalogLookup()
	// catalog order puts the unavailable B2 first, the request names B1 first
	lookup.On("FindByBarcodes", []string{"B1", "B2"}).
		Return([]catalog.Item{catalogItem("B2", 2, "PA", 7), catalogItem("B1", 1, "QK", 7)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1", "B2"))
	assert.NoError(t, err)
	assertRejected(t, model.InvalidDeliveryCode, out)
}

func TestValidateMultiEddSkipsDeliveryAndBib(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1", "B2"}).
		Return([]catalog.Item{catalogItem("B1", 1, "QK", 7), catalogItem("B2", 1, "QK", 8)}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeEdd, "B1", "B2"))
	assert.NoError(t, err)
	assert.True(t, out.Valid)
}

func TestValidateMultiNoneFound(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1", "B2"}).Return([]catalog.Item{}, nil)
	out, err := newValidator(lookup).Validate(appCtx, request(model.RequestTypeRetrieval, "B1", "B2"))
	assert.NoError(t, err)
	assertRejected(t, model.WrongItemBarcode, out)
}

func TestValidateIsRepeatable(t *testing.T) {
	lookup := newCatalogLookup()
	lookup.On("FindByBarcodes", []string{"B1", "B2"}).
		Return([]catalog.Item{catalogItem("B1", 1, "PA", 7), catalogItem("B2", 1, "PA", 8)}, nil)
	v := newValidator(lookup)
	env := request(model.RequestTypeRetrieval, "B1", "B2")
	first, err := v.Validate(appCtx, env)
	assert.NoError(t, err)
	second, err := v.Validate(appCtx, env)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOrderByBarcodes(t *testing.T) {
	items := []catalog.Item{catalogItem("C", 1, "PA"), catalogItem("X", 1, "PA"), catalogItem("A", 1, "PA")}
	ordered := orderByBarcodes(items, []string{"A", "B", "C"})
	var got []string
	for _, it := range ordered {
		got = append(got, it.Barcode)
	}
	assert.Equal(t, []string{"A", "C", "X"}, got)
}
