package adapter

import (
	"strings"

	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/common"
)

type DbCatalogLookupAdapter struct {
	repo catalog.CatalogRepo
}

func CreateDbCatalogLookupAdapter(repo catalog.CatalogRepo) CatalogLookupAdapter {
	return &DbCatalogLookupAdapter{repo: repo}
}

func (a *DbCatalogLookupAdapter) FindByBarcodes(ctx common.ExtendedContext, barcodes []string) ([]catalog.Item, error) {
	seen := make(map[string]bool, len(barcodes))
	var unique []string
	for _, b := range barcodes {
		b = strings.TrimSpace(b)
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		unique = append(unique, b)
	}
	if len(unique) == 0 {
		return []catalog.Item{}, nil
	}
	return a.repo.FindItemsByBarcodes(ctx, unique)
}

func (a *DbCatalogLookupAdapter) ItemStatus(ctx common.ExtendedContext, statusId int32) (string, error) {
	return a.repo.GetItemStatusCode(ctx, statusId)
}

func (a *DbCatalogLookupAdapter) FindByCode(ctx common.ExtendedContext, code string) (*catalog.CustomerCode, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}
	return a.repo.GetCustomerCode(ctx, code)
}
