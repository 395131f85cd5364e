package lms

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/httpclient"
	"github.com/indexdata/circbroker/model"
)

// LmsAdapterRest talks to an institution gateway that accepts JSON posts at
// <base_url>/<operation> and answers with the canonical response shapes.
type LmsAdapterRest struct {
	client  *http.Client
	baseUrl string
	apiKey  string
}

type restItemRequest struct {
	ItemBarcode   string `json:"itemBarcode,omitempty"`
	PatronBarcode string `json:"patronBarcode,omitempty"`
	Institution   string `json:"institution,omitempty"`
	Title         string `json:"title,omitempty"`
}

type restPatronValidation struct {
	Valid bool `json:"valid"`
}

func CreateLmsAdapterRest(restInfo map[string]any, client *http.Client) (LmsAdapter, error) {
	l := &LmsAdapterRest{client: client}
	err := l.parseConfig(restInfo)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (l *LmsAdapterRest) parseConfig(restInfo map[string]any) error {
	var ok bool
	l.baseUrl, ok = restInfo["base_url"].(string)
	if !ok || l.baseUrl == "" {
		return fmt.Errorf("missing required REST configuration field: base_url")
	}
	l.baseUrl = strings.TrimSuffix(l.baseUrl, "/")
	l.apiKey, _ = restInfo["api_key"].(string)
	return nil
}

func (l *LmsAdapterRest) post(ctx common.ExtendedContext, operation string, req any, res any) error {
	client := httpclient.NewClient()
	if l.apiKey != "" {
		client.WithHeaders("api_key", l.apiKey)
	}
	err := client.PostJson(ctx, l.client, l.baseUrl+"/"+operation, req, res)
	if err != nil {
		return fmt.Errorf("REST %s failed: %w", operation, err)
	}
	return nil
}

func (l *LmsAdapterRest) CheckOutItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckoutResponse, error) {
	var resp model.CheckoutResponse
	err := l.post(ctx, "checkoutItem", restItemRequest{ItemBarcode: itemBarcode, PatronBarcode: patronBarcode}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) CheckInItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckinResponse, error) {
	var resp model.CheckinResponse
	err := l.post(ctx, "checkinItem", restItemRequest{ItemBarcode: itemBarcode, PatronBarcode: patronBarcode}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) PlaceHold(ctx common.ExtendedContext, params HoldParams) (*model.HoldResponse, error) {
	var resp model.HoldResponse
	err := l.post(ctx, "holdItem", params, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) CancelHold(ctx common.ExtendedContext, params HoldParams) (*model.HoldResponse, error) {
	var resp model.HoldResponse
	err := l.post(ctx, "cancelHoldItem", params, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) CreateBib(ctx common.ExtendedContext, itemBarcode string, patronBarcode string, institution string, title string) (*model.CreateBibResponse, error) {
	var resp model.CreateBibResponse
	req := restItemRequest{ItemBarcode: itemBarcode, PatronBarcode: patronBarcode, Institution: institution, Title: title}
	err := l.post(ctx, "createBib", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) LookupItem(ctx common.ExtendedContext, itemBarcode string) (*model.ItemInformationResponse, error) {
	var resp model.ItemInformationResponse
	err := l.post(ctx, "itemInformation", restItemRequest{ItemBarcode: itemBarcode}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) RecallItem(ctx common.ExtendedContext, params HoldParams) (*model.RecallResponse, error) {
	var resp model.RecallResponse
	err := l.post(ctx, "recallItem", params, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) LookupPatron(ctx common.ExtendedContext, patronBarcode string) (*model.PatronInformationResponse, error) {
	var resp model.PatronInformationResponse
	err := l.post(ctx, "patronInformation", restItemRequest{PatronBarcode: patronBarcode}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) RefileItem(ctx common.ExtendedContext, itemBarcode string) (*model.RefileResponse, error) {
	var resp model.RefileResponse
	err := l.post(ctx, "refileItem", restItemRequest{ItemBarcode: itemBarcode}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *LmsAdapterRest) ValidatePatron(ctx common.ExtendedContext, institution string, patronBarcode string) (bool, error) {
	var resp restPatronValidation
	err := l.post(ctx, "patronValidation", restItemRequest{PatronBarcode: patronBarcode, Institution: institution}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Valid, nil
}
