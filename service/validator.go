package service

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/indexdata/circbroker/adapter"
	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
)

// Outcome is the result of item validation. Status mirrors the HTTP status the
// validation endpoint answers with.
type Outcome struct {
	Valid  bool
	Reason string
	Status int
}

func valid() Outcome {
	return Outcome{Valid: true, Reason: model.ValidRequest, Status: http.StatusOK}
}

func rejected(reason string) Outcome {
	return Outcome{Valid: false, Reason: reason, Status: http.StatusBadRequest}
}

type ItemValidator struct {
	items    adapter.ItemLookupAdapter
	delivery *DeliveryValidator
}

func NewItemValidator(items adapter.ItemLookupAdapter, delivery *DeliveryValidator) *ItemValidator {
	return &ItemValidator{items: items, delivery: delivery}
}

// Validate checks availability, ownership and delivery policy of the items in the request.
// A rejection is reported in the outcome; the error is reserved for failed lookups.
func (v *ItemValidator) Validate(ctx common.ExtendedContext, env *model.RequestEnvelope) (Outcome, error) {
	barcodes := env.Barcodes()
	if len(barcodes) == 0 {
		return valid(), nil
	}
	items, err := v.items.FindByBarcodes(ctx, barcodes)
	if err != nil {
		return Outcome{}, fmt.Errorf("item lookup failed: %w", err)
	}
	if len(items) == 0 {
		return rejected(model.WrongItemBarcode), nil
	}
	if len(barcodes) == 1 {
		return v.validateSingle(ctx, env, items)
	}
	return v.validateMulti(ctx, env, orderByBarcodes(items, barcodes))
}

func (v *ItemValidator) validateSingle(ctx common.ExtendedContext, env *model.RequestEnvelope, items []catalog.Item) (Outcome, error) {
	for _, item := range items {
		status, err := v.items.ItemStatus(ctx, item.AvailabilityStatusId)
		if err != nil {
			return Outcome{}, fmt.Errorf("item status lookup failed: %w", err)
		}
		if strings.EqualFold(status, model.ItemStatusNotAvailable) && env.IsRetrievalLike() {
			return rejected(model.RetrievalNotForUnavailableItem), nil
		}
		if strings.EqualFold(status, model.ItemStatusAvailable) && env.IsRequestType(model.RequestTypeRecall) {
			return rejected(model.RecallNotForAvailableItem), nil
		}
	}
	if env.IsEddOrBorrowDirect() {
		return valid(), nil
	}
	check, err := v.delivery.CheckDeliveryLocation(ctx, items[0].CustomerCode, env)
	if err != nil {
		return Outcome{}, fmt.Errorf("customer code lookup failed: %w", err)
	}
	return deliveryOutcome(check), nil
}

func (v *ItemValidator) validateMulti(ctx common.ExtendedContext, env *model.RequestEnvelope, items []catalog.Item) (Outcome, error) {
	bibIds := map[int64]bool{}
	for _, item := range items {
		for _, bib := range item.Bibliographics {
			bibIds[bib.BibliographicId] = true
		}
	}
	for _, item := range items {
		if item.AvailabilityStatusId == model.ItemStatusIdNotAvailable && env.IsRetrievalLike() {
			return rejected(model.InvalidItemBarcode), nil
		}
		if item.AvailabilityStatusId == model.ItemStatusIdAvailable && env.IsRequestType(model.RequestTypeRecall) {
			return rejected(model.RecallNotForAvailableItem), nil
		}
		if env.IsEddOrBorrowDirect() {
			continue
		}
		check, err := v.delivery.CheckDeliveryLocation(ctx, item.CustomerCode, env)
		if err != nil {
			return Outcome{}, fmt.Errorf("customer code lookup failed: %w", err)
		}
		if check != DeliveryAllowed {
			return deliveryOutcome(check), nil
		}
		// every item must belong to exactly the same set of bibliographic records
		if len(item.Bibliographics) != len(bibIds) {
			return rejected(model.ItemBarcodeWithDifferentBib), nil
		}
		for _, bib := range item.Bibliographics {
			if !bibIds[bib.BibliographicId] {
				return rejected(model.ItemBarcodeWithDifferentBib), nil
			}
		}
	}
	return valid(), nil
}

func deliveryOutcome(check DeliveryCheck) Outcome {
	switch check {
	case DeliveryAllowed:
		return valid()
	case DeliveryInvalidCustomerCode:
		return rejected(model.InvalidCustomerCode)
	default:
		return rejected(model.InvalidDeliveryCode)
	}
}

// orderByBarcodes puts items in the order of the requested barcodes, unmatched items last.
func orderByBarcodes(items []catalog.Item, barcodes []string) []catalog.Item {
	pos := make(map[string]int, len(barcodes))
	for i, b := range barcodes {
		if _, ok := pos[b]; !ok {
			pos[b] = i
		}
	}
	ordered := make([]catalog.Item, 0, len(items))
	var rest []catalog.Item
	buckets := make([][]catalog.Item, len(barcodes))
	for _, item := range items {
		if i, ok := pos[item.Barcode]; ok {
			buckets[i] = append(buckets[i], item)
		} else {
			rest = append(rest, item)
		}
	}
	for _, b := range buckets {
		ordered = append(ordered, b...)
	}
	return append(ordered, rest...)
}
