package catalog

import (
	"context"
	"os"
	"testing"

	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/dbutil"
	"github.com/indexdata/circbroker/repo"
	test "github.com/indexdata/circbroker/test/utils"
	"github.com/stretchr/testify/assert"
)

var catalogRepo CatalogRepo
var appCtx = common.CreateExtCtxWithArgs(context.Background(), nil)

func TestMain(m *testing.M) {
	ctx, pgContainer, connStr, err := dbutil.StartPGContainer()
	test.Expect(err, "failed to start db container")

	_, _, _, err = dbutil.RunMigrateScripts("file://../migrations", connStr)
	test.Expect(err, "failed to migrate")

	err = test.SeedCatalog(connStr, []string{"PUL", "CUL"},
		[]test.SeedCustomerCode{
			{Code: "PA", Description: "Firestone", Institution: "PUL", DeliveryRestrictions: "PA,PB,QK"},
			{Code: "QX", Description: "Offsite", Institution: "PUL"},
		},
		[]test.SeedItem{
			{Barcode: "32101001", StatusId: 1, CustomerCode: "PA", Institution: "PUL", BibIds: []string{"9901"}, Title: "Moby Dick"},
			{Barcode: "32101002", StatusId: 2, CustomerCode: "PA", Institution: "PUL", BibIds: []string{"9901", "9902"}},
			{Barcode: "CU0001", StatusId: 1, CustomerCode: "CU", Institution: "CUL", BibIds: []string{"5501"}},
		})
	test.Expect(err, "failed to seed catalog")

	pool, err := dbutil.InitDbPool(connStr, 4)
	test.Expect(err, "failed to init db pool")
	catalogRepo = &PgCatalogRepo{PgBaseRepo: repo.PgBaseRepo[CatalogRepo]{Pool: pool}}

	code := m.Run()

	pool.Close()
	test.Expect(dbutil.TerminatePGContainer(ctx, pgContainer), "failed to stop db container")
	os.Exit(code)
}

func TestFindItemsByBarcodes(t *testing.T) {
	items, err := catalogRepo.FindItemsByBarcodes(appCtx, []string{"32101002", "CU0001", "unknown"})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	byBarcode := map[string]Item{}
	for _, it := range items {
		byBarcode[it.Barcode] = it
	}
	pul := byBarcode["32101002"]
	assert.Equal(t, "PUL", pul.OwningInstitution)
	assert.Equal(t, int32(2), pul.AvailabilityStatusId)
	assert.Equal(t, "PA", pul.CustomerCode)
	assert.Len(t, pul.Bibliographics, 2)
	assert.Equal(t, "9901", pul.Bibliographics[0].OwningInstitutionBibId)
	assert.Equal(t, "Moby Dick", pul.Bibliographics[0].Title)
	assert.Equal(t, "9902", pul.Bibliographics[1].OwningInstitutionBibId)

	cul := byBarcode["CU0001"]
	assert.Equal(t, "CUL", cul.OwningInstitution)
	assert.Len(t, cul.Bibliographics, 1)
}

func TestFindItemsByBarcodesNone(t *testing.T) {
	items, err := catalogRepo.FindItemsByBarcodes(appCtx, []string{"nope"})
	assert.NoError(t, err)
	assert.Empty(t, items)

	items, err = catalogRepo.FindItemsByBarcodes(appCtx, nil)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetItemStatusCode(t *testing.T) {
	code, err := catalogRepo.GetItemStatusCode(appCtx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Available", code)
	code, err = catalogRepo.GetItemStatusCode(appCtx, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Not Available", code)
	code, err = catalogRepo.GetItemStatusCode(appCtx, 99)
	assert.NoError(t, err)
	assert.Equal(t, "", code)
}

func TestGetCustomerCode(t *testing.T) {
	cc, err := catalogRepo.GetCustomerCode(appCtx, "PA")
	assert.NoError(t, err)
	assert.NotNil(t, cc)
	assert.Equal(t, "PA", cc.Code)
	assert.Equal(t, "PUL", cc.OwningInstitution)
	assert.Equal(t, "PA,PB,QK", cc.DeliveryRestrictions)

	cc, err = catalogRepo.GetCustomerCode(appCtx, "QX")
	assert.NoError(t, err)
	assert.Equal(t, "", cc.DeliveryRestrictions)

	cc, err = catalogRepo.GetCustomerCode(appCtx, "ZZ")
	assert.NoError(t, err)
	assert.Nil(t, cc)

	cc, err = catalogRepo.GetCustomerCode(appCtx, "pa")
	assert.NoError(t, err)
	assert.Nil(t, cc)
}

func TestSaveRequestItem(t *testing.T) {
	items, err := catalogRepo.FindItemsByBarcodes(appCtx, []string{"32101001"})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	id, err := catalogRepo.SaveRequestItem(appCtx, RequestItem{
		ItemId:                items[0].ItemId,
		RequestType:           "EDD",
		RequestingInstitution: "CUL",
		PatronBarcode:         "p1",
		Status:                "EDD_ORDER_PLACED",
	})
	assert.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = catalogRepo.SaveRequestItem(appCtx, RequestItem{ItemId: -1, RequestType: "EDD", RequestingInstitution: "CUL", Status: "X"})
	assert.ErrorContains(t, err, "failed to save request item")
}
