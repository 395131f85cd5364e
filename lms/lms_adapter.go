package lms

import (
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
)

// HoldParams carries the arguments shared by hold, cancel hold and recall.
type HoldParams struct {
	ItemBarcode           string `json:"itemBarcode"`
	PatronBarcode         string `json:"patronBarcode"`
	RequestingInstitution string `json:"requestingInstitution,omitempty"`
	OwningInstitution     string `json:"owningInstitution,omitempty"`
	ExpirationDate        string `json:"expirationDate,omitempty"`
	BibId                 string `json:"bibId,omitempty"`
	PickupLocation        string `json:"pickupLocation,omitempty"`
	TrackingId            string `json:"trackingId,omitempty"`
	Title                 string `json:"title,omitempty"`
	Author                string `json:"author,omitempty"`
	CallNumber            string `json:"callNumber,omitempty"`
}

// LmsAdapter is the set of circulation calls the broker makes against an institution's
// library management system. Implementations return an error for transport or protocol
// failures and a response with Success=false when the LMS declined the call.
type LmsAdapter interface {
	CheckOutItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckoutResponse, error)

	CheckInItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckinResponse, error)

	PlaceHold(ctx common.ExtendedContext, params HoldParams) (*model.HoldResponse, error)

	CancelHold(ctx common.ExtendedContext, params HoldParams) (*model.HoldResponse, error)

	CreateBib(ctx common.ExtendedContext, itemBarcode string, patronBarcode string, institution string, title string) (*model.CreateBibResponse, error)

	LookupItem(ctx common.ExtendedContext, itemBarcode string) (*model.ItemInformationResponse, error)

	RecallItem(ctx common.ExtendedContext, params HoldParams) (*model.RecallResponse, error)

	LookupPatron(ctx common.ExtendedContext, patronBarcode string) (*model.PatronInformationResponse, error)

	RefileItem(ctx common.ExtendedContext, itemBarcode string) (*model.RefileResponse, error)

	ValidatePatron(ctx common.ExtendedContext, institution string, patronBarcode string) (bool, error)
}
