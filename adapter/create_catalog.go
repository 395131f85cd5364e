package adapter

import (
	"errors"

	"github.com/indexdata/circbroker/catalog"
)

func CreateCatalogLookupAdapter(adapterType string, catalogRepo catalog.CatalogRepo) (CatalogLookupAdapter, error) {
	if adapterType == "db" {
		if catalogRepo == nil {
			return nil, errors.New("catalog repository required for CATALOG_ADAPTER=db")
		}
		return CreateDbCatalogLookupAdapter(catalogRepo), nil
	}
	if adapterType == "mock" {
		return &MockCatalogLookupAdapter{}, nil
	}
	return nil, errors.New("bad value for CATALOG_ADAPTER")
}
