package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/indexdata/circbroker/lms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealthz(t *testing.T) {
	req, _ := http.NewRequest("GET", "/healthz", bytes.NewReader(nil))
	rr := httptest.NewRecorder()
	HandleHealthz(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestHandleOpenApiSpec(t *testing.T) {
	req, _ := http.NewRequest("GET", "/v3/open-api.yaml", bytes.NewReader(nil))
	rr := httptest.NewRecorder()
	HandleOpenApiSpec(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/x-yaml", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "/requestItem/checkoutItem")
}

func TestConfigLogger(t *testing.T) {
	saved := ENABLE_JSON_LOG
	defer func() { ENABLE_JSON_LOG = saved }()
	ENABLE_JSON_LOG = "true"
	handler := configLog()
	if handler == nil {
		t.Errorf("expected to have handler")
	}
}

func TestBadCatalogAdapter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saved := CATALOG_ADAPTER
	defer func() { CATALOG_ADAPTER = saved }()
	CATALOG_ADAPTER = "bad"
	_, err := Init(ctx)
	assert.ErrorContains(t, err, "bad value for CATALOG_ADAPTER")
}

func TestBadConnectorsConfig(t *testing.T) {
	saved := CONNECTORS_CONFIG
	defer func() { CONNECTORS_CONFIG = saved }()
	CONNECTORS_CONFIG = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Init(context.Background())
	assert.ErrorContains(t, err, "failed to read connectors config")
}

func TestLoadConnectorsFileDefault(t *testing.T) {
	file, err := LoadConnectorsFile("")
	require.NoError(t, err)
	assert.Equal(t, "NYPL", file.DeliveryByFieldInstitution)
	assert.Equal(t, "rcpcirc", file.DefaultPickupLocations["PUL"])
	assert.Len(t, file.Connectors, 6)
}

func TestLoadConnectorsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connectors.yaml")
	err := os.WriteFile(path, []byte(`
deliveryByFieldInstitution: CUL
defaultPickupLocations:
  PUL: pa
connectors:
  - institution: PUL
    family: general-ils
    type: ncip
    settings:
      address: http://localhost:9999/ncip
      from_agency: RECAP
  - institution: PUL
    family: patron-validation
    type: rest
    settings:
      base_url: http://localhost:9999/rest
`), 0o600)
	require.NoError(t, err)

	file, err := LoadConnectorsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CUL", file.DeliveryByFieldInstitution)
	assert.Equal(t, map[string]string{"PUL": "pa"}, file.DefaultPickupLocations)
	require.Len(t, file.Connectors, 2)
	assert.Equal(t, lms.FamilyGeneralIls, file.Connectors[0].Family)
	assert.Equal(t, lms.ConnectorTypeNcip, file.Connectors[0].Type)
	assert.Equal(t, "RECAP", file.Connectors[0].Settings["from_agency"])
	assert.Equal(t, lms.FamilyPatronValidation, file.Connectors[1].Family)
}

func TestLoadConnectorsFileNoPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connectors: []\n"), 0o600))
	file, err := LoadConnectorsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NYPL", file.DeliveryByFieldInstitution)
	assert.Empty(t, file.Connectors)
}

func TestLoadConnectorsFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connectors: {institution"), 0o600))
	_, err := LoadConnectorsFile(path)
	assert.ErrorContains(t, err, "failed to parse connectors config")
}

func TestSplitTopics(t *testing.T) {
	assert.Equal(t, []string{"circ_pul_edd", "circ_cul_edd"}, splitTopics(" circ_pul_edd, ,circ_cul_edd"))
	assert.Nil(t, splitTopics(""))
}
