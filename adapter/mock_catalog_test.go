package adapter

import (
	"testing"

	"github.com/indexdata/circbroker/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFindByBarcodes(t *testing.T) {
	m := &MockCatalogLookupAdapter{}
	items, err := m.FindByBarcodes(appCtx, []string{"plain", "na-CUL-1@55", "not-found", "nypl-2"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "PUL", items[0].OwningInstitution)
	assert.Equal(t, "PA", items[0].CustomerCode)
	assert.Equal(t, model.ItemStatusIdAvailable, items[0].AvailabilityStatusId)
	assert.Equal(t, "b1", items[0].Bibliographics[0].OwningInstitutionBibId)

	assert.Equal(t, "CUL", items[1].OwningInstitution)
	assert.Equal(t, "CU", items[1].CustomerCode)
	assert.Equal(t, model.ItemStatusIdNotAvailable, items[1].AvailabilityStatusId)
	assert.Equal(t, "55", items[1].Bibliographics[0].OwningInstitutionBibId)

	assert.Equal(t, "NYPL", items[2].OwningInstitution)
	assert.Equal(t, items[0].Bibliographics[0].BibliographicId, items[2].Bibliographics[0].BibliographicId)
	assert.NotEqual(t, items[0].Bibliographics[0].BibliographicId, items[1].Bibliographics[0].BibliographicId)
}

func TestMockFindByBarcodesError(t *testing.T) {
	m := &MockCatalogLookupAdapter{}
	_, err := m.FindByBarcodes(appCtx, []string{"ok", "error"})
	assert.EqualError(t, err, "there is error")
}

func TestMockItemStatus(t *testing.T) {
	m := &MockCatalogLookupAdapter{}
	s, _ := m.ItemStatus(appCtx, model.ItemStatusIdAvailable)
	assert.Equal(t, model.ItemStatusAvailable, s)
	s, _ = m.ItemStatus(appCtx, model.ItemStatusIdNotAvailable)
	assert.Equal(t, model.ItemStatusNotAvailable, s)
	s, _ = m.ItemStatus(appCtx, 9)
	assert.Empty(t, s)
}

func TestMockFindByCode(t *testing.T) {
	m := &MockCatalogLookupAdapter{}
	cc, err := m.FindByCode(appCtx, "PA")
	require.NoError(t, err)
	require.NotNil(t, cc)
	assert.Equal(t, "PA,PB,QK", cc.DeliveryRestrictions)

	cc, err = m.FindByCode(appCtx, "pa")
	assert.NoError(t, err)
	assert.Nil(t, cc)

	cc, err = m.FindByCode(appCtx, "zz")
	assert.NoError(t, err)
	assert.Nil(t, cc)

	_, err = m.FindByCode(appCtx, "error")
	assert.Error(t, err)
}
