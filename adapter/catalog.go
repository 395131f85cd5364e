package adapter

import (
	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/common"
)

type ItemLookupAdapter interface {
	// FindByBarcodes returns matching items in no particular order, empty when none match
	FindByBarcodes(ctx common.ExtendedContext, barcodes []string) ([]catalog.Item, error)
	// ItemStatus maps an availability status id to its code text
	ItemStatus(ctx common.ExtendedContext, statusId int32) (string, error)
}

type CustomerCodeLookupAdapter interface {
	// FindByCode returns nil without error when the code is unknown
	FindByCode(ctx common.ExtendedContext, code string) (*catalog.CustomerCode, error)
}

type CatalogLookupAdapter interface {
	ItemLookupAdapter
	CustomerCodeLookupAdapter
}
