package adapter

import (
	"errors"
	"hash/fnv"
	"strings"

	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
)

// MockCatalogLookupAdapter serves a synthetic catalog driven by the barcode text:
//
//	error          lookup fails
//	not-found      no item
//	na-<rest>      item is not available
//	<INST>-<rest>  item owned by INST (default PUL)
//	<...>@<bib>    item linked to bib id <bib> (default b1)
type MockCatalogLookupAdapter struct {
}

var mockCustomerCodes = map[string]catalog.CustomerCode{
	"PA": {CustomerCodeId: 1, Code: "PA", Description: "Firestone", OwningInstitution: "PUL", DeliveryRestrictions: "PA,PB,QK"},
	"PB": {CustomerCodeId: 2, Code: "PB", Description: "Lewis", OwningInstitution: "PUL", DeliveryRestrictions: "PB"},
	"QK": {CustomerCodeId: 3, Code: "QK", Description: "Offsite", OwningInstitution: "PUL"},
	"CU": {CustomerCodeId: 4, Code: "CU", Description: "Butler", OwningInstitution: "CUL", DeliveryRestrictions: "CU,QX"},
	"QX": {CustomerCodeId: 5, Code: "QX", Description: "Offsite", OwningInstitution: "CUL"},
	"NA": {CustomerCodeId: 6, Code: "NA", Description: "Schwarzman", OwningInstitution: "NYPL", DeliveryRestrictions: "NA,NH"},
	"NH": {CustomerCodeId: 7, Code: "NH", Description: "Offsite", OwningInstitution: "NYPL"},
}

var mockInstitutionCodes = map[string]string{
	"PUL":  "PA",
	"CUL":  "CU",
	"NYPL": "NA",
}

func (m *MockCatalogLookupAdapter) FindByBarcodes(ctx common.ExtendedContext, barcodes []string) ([]catalog.Item, error) {
	var items []catalog.Item
	for i, barcode := range barcodes {
		if barcode == "error" {
			return nil, errors.New("there is error")
		}
		if barcode == "not-found" || strings.TrimSpace(barcode) == "" {
			continue
		}
		status := model.ItemStatusIdAvailable
		rest := barcode
		if strings.HasPrefix(rest, "na-") {
			status = model.ItemStatusIdNotAvailable
			rest = strings.TrimPrefix(rest, "na-")
		}
		bib := "b1"
		if at := strings.LastIndex(rest, "@"); at >= 0 {
			bib = rest[at+1:]
			rest = rest[:at]
		}
		inst := "PUL"
		if prefix, _, found := strings.Cut(rest, "-"); found {
			if _, known := mockInstitutionCodes[strings.ToUpper(prefix)]; known {
				inst = strings.ToUpper(prefix)
			}
		}
		items = append(items, catalog.Item{
			ItemId:               int64(i + 1),
			Barcode:              barcode,
			AvailabilityStatusId: status,
			CustomerCode:         mockInstitutionCodes[inst],
			OwningInstitution:    inst,
			Bibliographics: []catalog.Bibliographic{{
				BibliographicId:        mockBibId(bib),
				OwningInstitutionBibId: bib,
				Title:                  "Title of " + bib,
			}},
		})
	}
	return items, nil
}

func (m *MockCatalogLookupAdapter) ItemStatus(ctx common.ExtendedContext, statusId int32) (string, error) {
	switch statusId {
	case model.ItemStatusIdAvailable:
		return model.ItemStatusAvailable, nil
	case model.ItemStatusIdNotAvailable:
		return model.ItemStatusNotAvailable, nil
	}
	return "", nil
}

func (m *MockCatalogLookupAdapter) FindByCode(ctx common.ExtendedContext, code string) (*catalog.CustomerCode, error) {
	if code == "error" {
		return nil, errors.New("there is error")
	}
	cc, ok := mockCustomerCodes[code]
	if !ok {
		return nil, nil
	}
	return &cc, nil
}

func mockBibId(bib string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bib))
	return int64(h.Sum32())
}
