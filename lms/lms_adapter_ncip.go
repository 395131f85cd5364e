package lms

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
	"github.com/indexdata/circbroker/ncip"
	"github.com/indexdata/circbroker/ncipclient"
	"github.com/indexdata/go-utils/utils"
)

var ErrRefileNotSupported = errors.New("refile is not supported by the NCIP connector")

type LmsAdapterNcip struct {
	ncipClient               ncipclient.NcipClient
	address                  string
	fromAgency               string
	toAgency                 string
	fromAgencyAuthentication string
}

func CreateLmsAdapterNcip(ncipInfo map[string]any, client *http.Client) (LmsAdapter, error) {
	l := &LmsAdapterNcip{}
	err := l.parseConfig(ncipInfo)
	if err != nil {
		return nil, err
	}
	l.ncipClient = ncipclient.NewNcipClient(client, l.address, l.fromAgency, l.toAgency, l.fromAgencyAuthentication)
	return l, nil
}

func (l *LmsAdapterNcip) parseConfig(ncipInfo map[string]any) error {
	var ok bool
	l.address, ok = ncipInfo["address"].(string)
	if !ok || l.address == "" {
		return fmt.Errorf("missing required NCIP configuration field: address")
	}
	l.fromAgency, ok = ncipInfo["from_agency"].(string)
	if !ok || l.fromAgency == "" {
		return fmt.Errorf("missing required NCIP configuration field: from_agency")
	}
	l.toAgency, _ = ncipInfo["to_agency"].(string)
	l.fromAgencyAuthentication, _ = ncipInfo["from_agency_authentication"].(string)
	return nil
}

func barcodeItemId(barcode string) ncip.ItemId {
	return ncip.ItemId{
		ItemIdentifierType:  &ncip.SchemeValuePair{Text: ncip.ItemIdentifierType},
		ItemIdentifierValue: barcode,
	}
}

func barcodeUserId(barcode string) *ncip.UserId {
	if barcode == "" {
		return nil
	}
	return &ncip.UserId{
		UserIdentifierType:  &ncip.SchemeValuePair{Text: ncip.UserIdentifierType},
		UserIdentifierValue: barcode,
	}
}

func formatDate(d *utils.XSDDateTime) string {
	if d == nil {
		return ""
	}
	return d.Time.Format(time.RFC3339)
}

func isProblem(err error, problem ncip.ProblemTypeMessage) bool {
	var ncipErr *ncipclient.NcipError
	return errors.As(err, &ncipErr) && ncipErr.Problem.ProblemType.Text == string(problem)
}

func (l *LmsAdapterNcip) CheckOutItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckoutResponse, error) {
	arg := ncip.CheckOutItem{
		UserId: barcodeUserId(patronBarcode),
		ItemId: barcodeItemId(itemBarcode),
	}
	res, err := l.ncipClient.CheckOutItem(ctx, arg)
	if err != nil {
		return nil, err
	}
	var resp model.CheckoutResponse
	resp.Succeed("Checkout successful")
	resp.ItemBarcode = itemBarcode
	resp.PatronIdentifier = patronBarcode
	if res != nil {
		resp.DueDate = formatDate(res.DateDue)
	}
	return &resp, nil
}

func (l *LmsAdapterNcip) CheckInItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckinResponse, error) {
	arg := ncip.CheckInItem{
		ItemId: barcodeItemId(itemBarcode),
	}
	_, err := l.ncipClient.CheckInItem(ctx, arg)
	if err != nil {
		return nil, err
	}
	var resp model.CheckinResponse
	resp.Succeed("Checkin successful")
	resp.ItemBarcode = itemBarcode
	resp.PatronIdentifier = patronBarcode
	return &resp, nil
}

func (l *LmsAdapterNcip) PlaceHold(ctx common.ExtendedContext, params HoldParams) (*model.HoldResponse, error) {
	arg := ncip.RequestItem{
		UserId:           barcodeUserId(params.PatronBarcode),
		ItemId:           []ncip.ItemId{barcodeItemId(params.ItemBarcode)},
		RequestType:      ncip.SchemeValuePair{Text: ncip.RequestTypeHold},
		RequestScopeType: ncip.SchemeValuePair{Text: ncip.RequestScopeItem},
	}
	if params.BibId != "" {
		arg.BibliographicId = []ncip.BibliographicId{{
			BibliographicRecordId: &ncip.BibliographicRecordId{BibliographicRecordIdentifier: params.BibId},
		}}
	}
	if params.TrackingId != "" {
		arg.RequestId = &ncip.RequestId{RequestIdentifierValue: params.TrackingId}
	}
	if params.PickupLocation != "" {
		arg.PickupLocation = &ncip.SchemeValuePair{Text: params.PickupLocation}
	}
	if params.Title != "" || params.Author != "" || params.CallNumber != "" {
		arg.ItemOptionalFields = &ncip.ItemOptionalFields{
			BibliographicDescription: &ncip.BibliographicDescription{Title: params.Title, Author: params.Author},
		}
		if params.CallNumber != "" {
			arg.ItemOptionalFields.ItemDescription = &ncip.ItemDescription{CallNumber: params.CallNumber}
		}
	}
	res, err := l.ncipClient.RequestItem(ctx, arg)
	if err != nil {
		return nil, err
	}
	resp := holdResponse(params)
	resp.Succeed("Request successfully processed")
	if res != nil {
		if res.HoldQueuePosition != nil {
			resp.QueuePosition = strconv.Itoa(*res.HoldQueuePosition)
		}
		resp.Available = res.DateAvailable != nil
	}
	return resp, nil
}

func holdResponse(params HoldParams) *model.HoldResponse {
	var resp model.HoldResponse
	resp.ItemBarcode = params.ItemBarcode
	resp.PatronIdentifier = params.PatronBarcode
	resp.ItemOwningInstitution = params.OwningInstitution
	resp.BibId = params.BibId
	resp.TitleIdentifier = params.Title
	resp.ExpirationDate = params.ExpirationDate
	resp.PickupLocation = params.PickupLocation
	resp.TrackingId = params.TrackingId
	return &resp
}

func (l *LmsAdapterNcip) CancelHold(ctx common.ExtendedContext, params HoldParams) (*model.HoldResponse, error) {
	item := barcodeItemId(params.ItemBarcode)
	arg := ncip.CancelRequestItem{
		UserId:      barcodeUserId(params.PatronBarcode),
		ItemId:      &item,
		RequestType: ncip.SchemeValuePair{Text: ncip.RequestTypeHold},
	}
	if params.TrackingId != "" {
		arg.RequestId = &ncip.RequestId{RequestIdentifierValue: params.TrackingId}
	}
	_, err := l.ncipClient.CancelRequestItem(ctx, arg)
	if err != nil {
		return nil, err
	}
	resp := holdResponse(params)
	resp.Succeed("Hold cancelled")
	return resp, nil
}

func (l *LmsAdapterNcip) CreateBib(ctx common.ExtendedContext, itemBarcode string, patronBarcode string, institution string, title string) (*model.CreateBibResponse, error) {
	item := barcodeItemId(itemBarcode)
	if institution != "" {
		item.AgencyId = &ncip.SchemeValuePair{Text: institution}
	}
	arg := ncip.CreateItem{
		ItemId: &item,
		ItemOptionalFields: &ncip.ItemOptionalFields{
			BibliographicDescription: &ncip.BibliographicDescription{Title: title},
		},
	}
	_, err := l.ncipClient.CreateItem(ctx, arg)
	if err != nil {
		return nil, err
	}
	var resp model.CreateBibResponse
	resp.Succeed("Item created")
	resp.ItemBarcode = itemBarcode
	resp.PatronIdentifier = patronBarcode
	resp.TitleIdentifier = title
	return &resp, nil
}

func (l *LmsAdapterNcip) LookupItem(ctx common.ExtendedContext, itemBarcode string) (*model.ItemInformationResponse, error) {
	item := barcodeItemId(itemBarcode)
	arg := ncip.LookupItem{
		ItemId: &item,
		ItemElementType: []ncip.SchemeValuePair{
			{Text: ncip.ItemElementBibDesc},
			{Text: ncip.ItemElementStatus},
			{Text: ncip.ItemElementDesc},
		},
	}
	var resp model.ItemInformationResponse
	resp.ItemBarcode = itemBarcode
	res, err := l.ncipClient.LookupItem(ctx, arg)
	if isProblem(err, ncip.UnknownItem) {
		resp.Fail("Item " + model.RequestItemBarcodeNotFound)
		return &resp, nil
	}
	if err != nil {
		return nil, err
	}
	resp.Succeed("Item found")
	if res == nil {
		return &resp, nil
	}
	resp.HoldPickupDate = formatDate(res.HoldPickupDate)
	resp.RecallDate = formatDate(res.DateRecalled)
	fields := res.ItemOptionalFields
	if fields == nil {
		return &resp, nil
	}
	if bib := fields.BibliographicDescription; bib != nil {
		resp.TitleIdentifier = bib.Title
		resp.Author = bib.Author
		if bib.BibliographicRecordId != nil {
			resp.BibId = bib.BibliographicRecordId.BibliographicRecordIdentifier
		}
	}
	if fields.CirculationStatus != nil {
		resp.CirculationStatus = fields.CirculationStatus.Text
	}
	if fields.HoldQueueLength != nil {
		resp.HoldQueueLength = strconv.Itoa(*fields.HoldQueueLength)
	}
	if fields.ItemDescription != nil {
		resp.CallNumber = fields.ItemDescription.CallNumber
	}
	if len(fields.Location) > 0 {
		resp.PermanentLocation = fields.Location[0].LocationName
		resp.CurrentLocation = fields.Location[len(fields.Location)-1].LocationName
	}
	return &resp, nil
}

func (l *LmsAdapterNcip) RecallItem(ctx common.ExtendedContext, params HoldParams) (*model.RecallResponse, error) {
	arg := ncip.RecallItem{
		ItemId: barcodeItemId(params.ItemBarcode),
	}
	if params.ExpirationDate != "" {
		if t, err := time.Parse(time.RFC3339, params.ExpirationDate); err == nil {
			arg.DesiredDateDue = &utils.XSDDateTime{Time: t}
		} else {
			ctx.Logger().Debug("ignoring unparsable expiration date", "expirationDate", params.ExpirationDate)
		}
	}
	res, err := l.ncipClient.RecallItem(ctx, arg)
	if err != nil {
		return nil, err
	}
	var resp model.RecallResponse
	resp.Succeed("Recall successfully processed")
	resp.ItemBarcode = params.ItemBarcode
	resp.PatronIdentifier = params.PatronBarcode
	resp.ItemOwningInstitution = params.OwningInstitution
	resp.BibId = params.BibId
	resp.ExpirationDate = params.ExpirationDate
	resp.PickupLocation = params.PickupLocation
	if res != nil {
		resp.DueDate = formatDate(res.DateDue)
	}
	return &resp, nil
}

func (l *LmsAdapterNcip) LookupPatron(ctx common.ExtendedContext, patronBarcode string) (*model.PatronInformationResponse, error) {
	var resp model.PatronInformationResponse
	resp.PatronIdentifier = patronBarcode
	resp.PatronBarcode = patronBarcode
	if patronBarcode == "" {
		resp.Fail("empty patron identifier")
		return &resp, nil
	}
	arg := ncip.LookupUser{
		UserId: barcodeUserId(patronBarcode),
		UserElementType: []ncip.SchemeValuePair{
			{Text: ncip.UserElementName},
			{Text: ncip.UserElementAddress},
			{Text: ncip.UserElementBlock},
		},
	}
	res, err := l.ncipClient.LookupUser(ctx, arg)
	if isProblem(err, ncip.UnknownUser) {
		resp.Fail("Patron not found")
		return &resp, nil
	}
	if err != nil {
		return nil, err
	}
	resp.Succeed("Patron found")
	if res == nil || res.UserOptionalFields == nil {
		return &resp, nil
	}
	fields := res.UserOptionalFields
	if fields.NameInformation != nil && fields.NameInformation.PersonalNameInformation != nil {
		resp.PatronName = fields.NameInformation.PersonalNameInformation.UnstructuredPersonalUserName
	}
	for _, addr := range fields.UserAddressInformation {
		if addr.ElectronicAddress != nil && resp.Email == "" {
			resp.Email = addr.ElectronicAddress.ElectronicAddressData
		}
	}
	resp.Blocked = len(fields.BlockOrTrap) > 0
	return &resp, nil
}

func (l *LmsAdapterNcip) RefileItem(ctx common.ExtendedContext, itemBarcode string) (*model.RefileResponse, error) {
	return nil, ErrRefileNotSupported
}

func (l *LmsAdapterNcip) ValidatePatron(ctx common.ExtendedContext, institution string, patronBarcode string) (bool, error) {
	if patronBarcode == "" {
		return false, nil
	}
	arg := ncip.LookupUser{
		UserId: barcodeUserId(patronBarcode),
	}
	if institution != "" {
		arg.UserId.AgencyId = &ncip.SchemeValuePair{Text: institution}
	}
	_, err := l.ncipClient.LookupUser(ctx, arg)
	if isProblem(err, ncip.UnknownUser) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
