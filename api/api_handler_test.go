package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indexdata/circbroker/adapter"
	"github.com/indexdata/circbroker/lms"
	"github.com/indexdata/circbroker/model"
	"github.com/indexdata/circbroker/oapi"
	"github.com/indexdata/circbroker/service"
	"github.com/indexdata/circbroker/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, maxSize int) (*httptest.Server, *mocks.MockRequestStore, *mocks.MockPublisher) {
	router, err := lms.NewLmsRouter([]lms.ConnectorConfig{
		{Institution: "PUL", Type: lms.ConnectorTypeManual},
		{Institution: "CUL", Type: lms.ConnectorTypeManual},
		{Institution: "PUL", Family: lms.FamilyPatronValidation, Type: lms.ConnectorTypeManual},
	}, http.DefaultClient)
	require.NoError(t, err)
	lookup := &adapter.MockCatalogLookupAdapter{}
	store := new(mocks.MockRequestStore)
	publisher := new(mocks.MockPublisher)
	dispatcher := service.NewRequestDispatcher(router, service.NewInstitutionPolicy(service.DefaultPolicyConfig()))
	validator := service.NewItemValidator(lookup, service.NewDeliveryValidator(lookup))
	edd := service.NewEddService(lookup, store, publisher, false)
	handler := NewApiHandler(dispatcher, validator, edd, maxSize)
	mux := http.NewServeMux()
	oapi.HandlerFromMux(&handler, mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, store, publisher
}

func post(t *testing.T, url string, body string) (int, string) {
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestIndex(t *testing.T) {
	server, _, _ := newTestServer(t, 1024)
	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var index oapi.Index
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&index))
	assert.True(t, strings.HasPrefix(index.Signature, "circbroker"))
}

func TestCheckoutItemEndpoint(t *testing.T) {
	server, _, _ := newTestServer(t, 1024)
	status, body := post(t, server.URL+REQUEST_ITEM_PATH+"/checkoutItem",
		`{"itemOwningInstitution":"PUL","itemBarcodes":["B1"],"patronBarcode":"P1"}`)
	assert.Equal(t, http.StatusOK, status)
	var res model.CheckoutResponse
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "B1", res.ItemBarcode)
}

func TestCallInstitutionParameter(t *testing.T) {
	server, _, _ := newTestServer(t, 1024)
	status, body := post(t, server.URL+REQUEST_ITEM_PATH+"/checkinItem?callInstitution=HUL",
		`{"itemOwningInstitution":"PUL","itemBarcodes":["B1"]}`)
	assert.Equal(t, http.StatusOK, status)
	var res model.CheckinResponse
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.False(t, res.Success)
	assert.Contains(t, res.ScreenMessage, "HUL")
}

func TestCancelHoldEndpoint(t *testing.T) {
	server, _, _ := newTestServer(t, 1024)
	status, body := post(t, server.URL+REQUEST_ITEM_PATH+"/cancelHoldItem", `{"itemOwningInstitution":"PUL"}`)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)

	status, body = post(t, server.URL+REQUEST_ITEM_PATH+"/cancelHoldItem", `{"itemOwningInstitution":"PUL","itemBarcodes":["B1"]}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"success":true`)
}

func TestBadBodies(t *testing.T) {
	server, _, _ := newTestServer(t, 64)
	status, body := post(t, server.URL+REQUEST_ITEM_PATH+"/holdItem", `{"itemBarcodes":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "invalid JSON body")

	status, _ = post(t, server.URL+REQUEST_ITEM_PATH+"/holdItem", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = post(t, server.URL+REQUEST_ITEM_PATH+"/holdItem", `{"requestNotes":"`+strings.Repeat("x", 100)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Contains(t, body, ErrBodyTooLarge.Error())
}

func TestValidateItemRequestEndpoint(t *testing.T) {
	server, _, _ := newTestServer(t, 1024)
	url := server.URL + REQUEST_ITEM_PATH + "/validateItemRequest"

	status, body := post(t, url, `{"requestingInstitution":"PUL","itemOwningInstitution":"PUL","itemBarcodes":["PUL-1"],"deliveryLocation":"PB","requestType":"RETRIEVAL"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, model.ValidRequest, body)

	status, body = post(t, url, `{"requestingInstitution":"PUL","itemOwningInstitution":"PUL","itemBarcodes":["PUL-1"],"requestType":"RECALL"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, model.RecallNotForAvailableItem, body)

	status, body = post(t, url, `{"itemBarcodes":["not-found"],"requestType":"RETRIEVAL"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, model.WrongItemBarcode, body)

	status, body = post(t, url, `{"itemBarcodes":["error"],"requestType":"RETRIEVAL"}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "there is error")
}

func TestPatronValidationEndpoint(t *testing.T) {
	server, _, _ := newTestServer(t, 1024)
	url := server.URL + REQUEST_ITEM_PATH + "/patronValidationBulkRequest"

	status, body := post(t, url, `{"requestingInstitution":"PUL","patronBarcode":"P1"}`)
	assert.Equal(t, http.StatusOK, status)
	var res model.PatronValidationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.True(t, res.Valid)

	status, body = post(t, url, `{"requestingInstitution":"CUL","patronBarcode":"P1"}`)
	assert.Equal(t, http.StatusOK, status)
	res = model.PatronValidationResponse{}
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.False(t, res.Valid)
	assert.Contains(t, res.ErrorMessage, lms.ErrUnknownInstitutionConnector.Error())

	status, _ = post(t, url, `{"patronBarcode":"P1"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = post(t, url, `{"requestingInstitution":"CUL"}`)
	assert.Equal(t, http.StatusOK, status)
	res = model.PatronValidationResponse{}
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, "", res.PatronBarcode)
	assert.False(t, res.Valid)
}

func TestIndexIsGetOnly(t *testing.T) {
	server, _, _ := newTestServer(t, 1024)
	status, _ := post(t, server.URL+"/", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}

func TestEddRequestEndpoint(t *testing.T) {
	server, store, publisher := newTestServer(t, 2048)
	store.On("SaveRequest", mock.Anything, int64(1), model.RequestStatusEdd).Return(int64(55), nil)
	publisher.On("Publish", "circ_cul_edd", mock.Anything).Return(nil)

	status, body := post(t, server.URL+REQUEST_ITEM_PATH+"/eddRequest",
		`{"requestingInstitution":"CUL","itemBarcodes":["PUL-1@9901"],"requestType":"EDD","patronBarcode":"P1"}`)
	assert.Equal(t, http.StatusOK, status)
	var res model.ItemInformationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.True(t, res.Success)
	assert.Equal(t, int64(55), res.RequestId)
	assert.Equal(t, "PUL", res.ItemOwningInstitution)
	assert.Equal(t, "9901", res.BibId)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}
