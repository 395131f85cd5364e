package lms

import (
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
)

// LmsAdapterManual is bound to institutions without ILS integration; staff handle
// circulation by hand so every call succeeds.
type LmsAdapterManual struct {
}

func CreateLmsAdapterManual() LmsAdapter {
	return &LmsAdapterManual{}
}

func (l *LmsAdapterManual) CheckOutItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckoutResponse, error) {
	var resp model.CheckoutResponse
	resp.Succeed("Checkout recorded for manual processing")
	resp.ItemBarcode = itemBarcode
	resp.PatronIdentifier = patronBarcode
	return &resp, nil
}

func (l *LmsAdapterManual) CheckInItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckinResponse, error) {
	var resp model.CheckinResponse
	resp.Succeed("Checkin recorded for manual processing")
	resp.ItemBarcode = itemBarcode
	resp.PatronIdentifier = patronBarcode
	return &resp, nil
}

func (l *LmsAdapterManual) PlaceHold(ctx common.ExtendedContext, params HoldParams) (*model.HoldResponse, error) {
	resp := holdResponse(params)
	resp.Succeed("Hold recorded for manual processing")
	return resp, nil
}

func (l *LmsAdapterManual) CancelHold(ctx common.ExtendedContext, params HoldParams) (*model.HoldResponse, error) {
	resp := holdResponse(params)
	resp.Succeed("Hold cancellation recorded for manual processing")
	return resp, nil
}

func (l *LmsAdapterManual) CreateBib(ctx common.ExtendedContext, itemBarcode string, patronBarcode string, institution string, title string) (*model.CreateBibResponse, error) {
	var resp model.CreateBibResponse
	resp.Succeed("Bib creation recorded for manual processing")
	resp.ItemBarcode = itemBarcode
	resp.PatronIdentifier = patronBarcode
	resp.TitleIdentifier = title
	return &resp, nil
}

func (l *LmsAdapterManual) LookupItem(ctx common.ExtendedContext, itemBarcode string) (*model.ItemInformationResponse, error) {
	var resp model.ItemInformationResponse
	resp.Succeed("Item information not available for manual processing")
	resp.ItemBarcode = itemBarcode
	return &resp, nil
}

func (l *LmsAdapterManual) RecallItem(ctx common.ExtendedContext, params HoldParams) (*model.RecallResponse, error) {
	var resp model.RecallResponse
	resp.Succeed("Recall recorded for manual processing")
	resp.ItemBarcode = params.ItemBarcode
	resp.PatronIdentifier = params.PatronBarcode
	resp.ExpirationDate = params.ExpirationDate
	resp.PickupLocation = params.PickupLocation
	return &resp, nil
}

func (l *LmsAdapterManual) LookupPatron(ctx common.ExtendedContext, patronBarcode string) (*model.PatronInformationResponse, error) {
	var resp model.PatronInformationResponse
	resp.Succeed("Patron information not available for manual processing")
	resp.PatronIdentifier = patronBarcode
	resp.PatronBarcode = patronBarcode
	return &resp, nil
}

func (l *LmsAdapterManual) RefileItem(ctx common.ExtendedContext, itemBarcode string) (*model.RefileResponse, error) {
	var resp model.RefileResponse
	resp.Succeed("Refile recorded for manual processing")
	resp.ItemBarcode = itemBarcode
	return &resp, nil
}

func (l *LmsAdapterManual) ValidatePatron(ctx common.ExtendedContext, institution string, patronBarcode string) (bool, error) {
	return patronBarcode != "", nil
}
