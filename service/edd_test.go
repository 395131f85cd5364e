package service

import (
	"errors"
	"testing"

	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/model"
	"github.com/indexdata/circbroker/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func eddEnvelope(barcodes ...string) *model.RequestEnvelope {
	return &model.RequestEnvelope{
		RequestingInstitution: "CUL",
		ItemBarcodes:          barcodes,
		PatronBarcode:         "P1",
		RequestType:           model.RequestTypeEdd,
		EmailAddress:          "reader@example.org",
		StartPage:             "1",
		EndPage:               "10",
		Volume:                "3",
		Issue:                 "2",
		ChapterTitle:          "Loomings",
		Author:                "Melville",
		RequestNotes:          "please hurry",
		DeliveryLocation:      "CU",
	}
}

func eddItem() catalog.Item {
	return catalog.Item{
		ItemId:            42,
		Barcode:           "B1",
		CustomerCode:      "PA",
		OwningInstitution: "PUL",
		Bibliographics:    []catalog.Bibliographic{{BibliographicId: 5, OwningInstitutionBibId: "9901", Title: "Moby Dick"}},
	}
}

const expectedNotes = "User: please hurry\nStart Page: 1 ;End Page: 10 ;Volume Number: 3 ;Issue: 2 ;Article Author: Melville ;Article/Chapter Title: Loomings "

func TestEddRequestItem(t *testing.T) {
	lookup := new(mocks.MockCatalogLookup)
	store := new(mocks.MockRequestStore)
	publisher := new(mocks.MockPublisher)
	lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{eddItem()}, nil)
	store.On("SaveRequest", mock.MatchedBy(func(env *model.RequestEnvelope) bool {
		return env.ItemOwningInstitution == "PUL" && env.CustomerCode == "PA" && env.RequestNotes == expectedNotes &&
			env.TrackingId != ""
	}), int64(42), model.RequestStatusEdd).Return(int64(1001), nil)
	publisher.On("Publish", "circ_cul_edd", mock.Anything).Return(nil)

	in := eddEnvelope("B1")
	res := NewEddService(lookup, store, publisher, false).EddRequestItem(appCtx, in)
	assert.True(t, res.Success)
	assert.Equal(t, model.EddRequestSuccess, res.ScreenMessage)
	assert.Equal(t, int64(1001), res.RequestId)
	assert.Equal(t, int64(42), res.ItemId)
	assert.Equal(t, "PUL", res.ItemOwningInstitution)
	assert.Equal(t, "Moby Dick", res.TitleIdentifier)
	assert.Equal(t, "9901", res.BibId)
	assert.Equal(t, "B1", res.ItemBarcode)
	assert.Equal(t, expectedNotes, res.RequestNotes)
	assert.Equal(t, model.RequestStatusEdd, res.RequestStatus)
	// the caller's envelope is left alone
	assert.Equal(t, "", in.ItemOwningInstitution)
	assert.Equal(t, "please hurry", in.RequestNotes)
	publisher.AssertCalled(t, "Publish", "circ_cul_edd", res)
}

func TestEddRequestItemQueued(t *testing.T) {
	lookup := new(mocks.MockCatalogLookup)
	store := new(mocks.MockRequestStore)
	publisher := new(mocks.MockPublisher)
	lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{eddItem()}, nil)
	store.On("SaveRequest", mock.Anything, int64(42), model.RequestStatusPending).Return(int64(7), nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	env := eddEnvelope("B1")
	env.TitleIdentifier = "Given title"
	env.BibId = "keep"
	res := NewEddService(lookup, store, publisher, true).EddRequestItem(appCtx, env)
	assert.True(t, res.Success)
	assert.Equal(t, model.RequestStatusPending, res.RequestStatus)
	assert.Equal(t, "Given title", res.TitleIdentifier)
	assert.Equal(t, "keep", res.BibId)
}

func TestEddRequestItemNotFound(t *testing.T) {
	lookup := new(mocks.MockCatalogLookup)
	store := new(mocks.MockRequestStore)
	publisher := new(mocks.MockPublisher)
	lookup.On("FindByBarcodes", []string{"B9"}).Return([]catalog.Item{}, nil)
	publisher.On("Publish", "circ_cul_edd", mock.Anything).Return(nil)

	res := NewEddService(lookup, store, publisher, false).EddRequestItem(appCtx, eddEnvelope("B9"))
	assert.False(t, res.Success)
	assert.Equal(t, model.WrongItemBarcode, res.ScreenMessage)
	assert.Equal(t, model.WrongItemBarcode+"\nplease hurry", res.RequestNotes)
	store.AssertNotCalled(t, "SaveRequest", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestEddRequestItemBestEffort(t *testing.T) {
	lookup := new(mocks.MockCatalogLookup)
	store := new(mocks.MockRequestStore)
	publisher := new(mocks.MockPublisher)
	lookup.On("FindByBarcodes", []string{"B1"}).Return([]catalog.Item{eddItem()}, nil)
	store.On("SaveRequest", mock.Anything, int64(42), model.RequestStatusEdd).Return(int64(0), errors.New("insert failed"))
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("notify failed"))

	res := NewEddService(lookup, store, publisher, false).EddRequestItem(appCtx, eddEnvelope("B1"))
	assert.True(t, res.Success)
	assert.Equal(t, int64(0), res.RequestId)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestEddRequestItemLookupError(t *testing.T) {
	lookup := new(mocks.MockCatalogLookup)
	publisher := new(mocks.MockPublisher)
	lookup.On("FindByBarcodes", []string{"B1"}).Return(nil, errors.New("db down"))

	res := NewEddService(lookup, new(mocks.MockRequestStore), publisher, false).EddRequestItem(appCtx, eddEnvelope("B1"))
	assert.False(t, res.Success)
	assert.Equal(t, "db down", res.ScreenMessage)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestEddNotesWithoutUserNotes(t *testing.T) {
	env := &model.RequestEnvelope{StartPage: "5", ArticleAuthor: "Author A", ArticleTitle: "Title T"}
	assert.Equal(t, "\nStart Page: 5 ;End Page:  ;Volume Number:  ;Issue:  ;Article Author: Author A ;Article/Chapter Title: Title T ", eddNotes(env))
}

func TestCatalogRequestStore(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("SaveRequestItem", catalog.RequestItem{
		ItemId:                42,
		RequestType:           "EDD",
		RequestingInstitution: "CUL",
		PatronBarcode:         "P1",
		DeliveryLocation:      "CU",
		EmailAddress:          "reader@example.org",
		Notes:                 "please hurry",
		Status:                model.RequestStatusEdd,
	}).Return(int64(9), nil)
	id, err := NewCatalogRequestStore(repo).SaveRequest(appCtx, eddEnvelope("B1"), 42, model.RequestStatusEdd)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), id)
}
