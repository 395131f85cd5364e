package service

import (
	"errors"
	"strings"

	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/lms"
	"github.com/indexdata/circbroker/model"
)

// RequestDispatcher runs circulation operations against the connector bound to the
// calling institution. Connector and routing failures never escape as errors; they are
// reported as unsuccessful responses.
type RequestDispatcher struct {
	router lms.LmsRouter
	policy *InstitutionPolicy
}

func NewRequestDispatcher(router lms.LmsRouter, policy *InstitutionPolicy) *RequestDispatcher {
	return &RequestDispatcher{router: router, policy: policy}
}

func (d *RequestDispatcher) operationCtx(ctx common.ExtendedContext, operation string, institution string) common.ExtendedContext {
	args := ctx.LoggerArgs()
	args.Operation = operation
	args.Institution = institution
	return ctx.WithArgs(&args)
}

func (d *RequestDispatcher) ilsAdapter(ctx common.ExtendedContext, institution string) (lms.LmsAdapter, error) {
	a, err := d.router.GetAdapter(ctx, institution, lms.FamilyGeneralIls)
	if err != nil {
		ctx.Logger().Error("no connector for institution", "error", err)
	}
	return a, err
}

// ensureMessage keeps unsuccessful responses from a connector from carrying a blank message.
func ensureMessage(item *model.ResponseItem) {
	if !item.Success && strings.TrimSpace(item.ScreenMessage) == "" {
		item.Fail("")
	}
}

func (d *RequestDispatcher) CheckoutItem(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) *model.CheckoutResponse {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "checkoutItem", inst)
	resp := &model.CheckoutResponse{}
	barcode, ok := env.PrimaryBarcode()
	if !ok {
		resp.Fail(model.ItemIdNotFound)
		return resp
	}
	resp.ItemBarcode = barcode
	resp.PatronIdentifier = env.PatronBarcode
	a, err := d.ilsAdapter(ctx, inst)
	if err != nil {
		resp.Fail(err.Error())
		return resp
	}
	res, err := a.CheckOutItem(ctx, barcode, env.PatronBarcode)
	if err != nil {
		ctx.Logger().Error("checkout failed", "itemBarcode", barcode, "error", err)
		resp.Fail(err.Error())
		return resp
	}
	if res == nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	ensureMessage(&res.ResponseItem)
	return res
}

func (d *RequestDispatcher) CheckinItem(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) *model.CheckinResponse {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "checkinItem", inst)
	resp := &model.CheckinResponse{}
	barcode, ok := env.PrimaryBarcode()
	if !ok {
		resp.Fail(model.ItemIdNotFound)
		return resp
	}
	resp.ItemBarcode = barcode
	resp.PatronIdentifier = env.PatronBarcode
	a, err := d.ilsAdapter(ctx, inst)
	if err != nil {
		resp.Fail(err.Error())
		return resp
	}
	res, err := a.CheckInItem(ctx, barcode, env.PatronBarcode)
	if err != nil {
		ctx.Logger().Error("checkin failed", "itemBarcode", barcode, "error", err)
		resp.Fail(err.Error())
		return resp
	}
	if res == nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	ensureMessage(&res.ResponseItem)
	return res
}

func (d *RequestDispatcher) holdParams(env *model.RequestEnvelope, barcode string, inst string) lms.HoldParams {
	return lms.HoldParams{
		ItemBarcode:           barcode,
		PatronBarcode:         env.PatronBarcode,
		RequestingInstitution: env.RequestingInstitution,
		OwningInstitution:     env.ItemOwningInstitution,
		ExpirationDate:        env.ExpirationDate,
		BibId:                 env.BibId,
		PickupLocation:        d.policy.ResolvePickupLocation(env, inst),
		TrackingId:            env.TrackingId,
	}
}

func (d *RequestDispatcher) HoldItem(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) *model.HoldResponse {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "holdItem", inst)
	resp := &model.HoldResponse{}
	barcode, ok := env.PrimaryBarcode()
	if !ok {
		resp.Fail(model.ItemIdNotFound)
		return resp
	}
	resp.ItemBarcode = barcode
	a, err := d.ilsAdapter(ctx, inst)
	if err != nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	params := d.holdParams(env, barcode, inst)
	params.Title = env.TitleIdentifier
	params.Author = env.Author
	params.CallNumber = env.CallNumber
	res, err := a.PlaceHold(ctx, params)
	if err != nil {
		ctx.Logger().Error("hold failed", "itemBarcode", barcode, "error", err)
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	if res == nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	ensureMessage(&res.ResponseItem)
	return res
}

// CancelHoldItem returns false without a response when the request names no item.
func (d *RequestDispatcher) CancelHoldItem(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) (*model.HoldResponse, bool) {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "cancelHoldItem", inst)
	barcode, ok := env.PrimaryBarcode()
	if !ok {
		ctx.Logger().Debug("cancel hold without item barcode ignored")
		return nil, false
	}
	resp := &model.HoldResponse{}
	resp.ItemBarcode = barcode
	a, err := d.ilsAdapter(ctx, inst)
	if err != nil {
		resp.Fail(err.Error())
		return resp, true
	}
	res, err := a.CancelHold(ctx, d.holdParams(env, barcode, inst))
	if err != nil {
		ctx.Logger().Error("cancel hold failed", "itemBarcode", barcode, "error", err)
		resp.Fail(err.Error())
		return resp, true
	}
	if res == nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp, true
	}
	ensureMessage(&res.ResponseItem)
	return res, true
}

// CreateBibliographicItem creates the bib record only when the requesting institution's
// ILS does not know the item yet.
func (d *RequestDispatcher) CreateBibliographicItem(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) *model.CreateBibResponse {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "createBib", inst)
	resp := &model.CreateBibResponse{}
	barcode, ok := env.PrimaryBarcode()
	if !ok {
		resp.Fail(model.ItemIdNotFound)
		return resp
	}
	resp.ItemBarcode = barcode
	info, err := d.lookupItem(ctx, d.policy.ResolveCallingInstitution(env.RequestingInstitution, env), barcode)
	if err != nil {
		ctx.Logger().Error("item lookup before create bib failed", "itemBarcode", barcode, "error", err)
		resp.Fail(err.Error())
		return resp
	}
	if !strings.Contains(strings.ToUpper(info.ScreenMessage), model.RequestItemBarcodeNotFound) {
		ctx.Logger().Info("item already known to ILS, bib not created", "itemBarcode", barcode, "bibId", info.BibId)
		resp.Succeed(model.ItemBarcodeAlreadyExist)
		resp.BibId = info.BibId
		return resp
	}
	a, err := d.ilsAdapter(ctx, inst)
	if err != nil {
		resp.Fail(err.Error())
		return resp
	}
	res, err := a.CreateBib(ctx, barcode, env.PatronBarcode, env.RequestingInstitution, env.TitleIdentifier)
	if err != nil {
		ctx.Logger().Error("create bib failed", "itemBarcode", barcode, "error", err)
		resp.Fail(err.Error())
		return resp
	}
	if res == nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	ensureMessage(&res.ResponseItem)
	return res
}

func (d *RequestDispatcher) lookupItem(ctx common.ExtendedContext, institution string, barcode string) (*model.ItemInformationResponse, error) {
	a, err := d.ilsAdapter(ctx, institution)
	if err != nil {
		return nil, err
	}
	res, err := a.LookupItem(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.New(model.IlsInvalidResponse)
	}
	ensureMessage(&res.ResponseItem)
	return res, nil
}

func (d *RequestDispatcher) ItemInformation(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) *model.ItemInformationResponse {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "itemInformation", inst)
	barcode, ok := env.PrimaryBarcode()
	if !ok {
		resp := &model.ItemInformationResponse{}
		resp.Fail(model.ItemIdNotFound)
		return resp
	}
	res, err := d.lookupItem(ctx, inst, barcode)
	if err != nil {
		ctx.Logger().Error("item information failed", "itemBarcode", barcode, "error", err)
		resp := &model.ItemInformationResponse{}
		resp.ItemBarcode = barcode
		resp.Fail(err.Error())
		return resp
	}
	return res
}

func (d *RequestDispatcher) RecallItem(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) *model.RecallResponse {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "recallItem", inst)
	resp := &model.RecallResponse{}
	barcode, ok := env.PrimaryBarcode()
	if !ok {
		resp.Fail(model.ItemIdNotFound)
		return resp
	}
	resp.ItemBarcode = barcode
	a, err := d.ilsAdapter(ctx, inst)
	if err != nil {
		resp.Fail(err.Error())
		return resp
	}
	res, err := a.RecallItem(ctx, d.holdParams(env, barcode, inst))
	if err != nil {
		ctx.Logger().Error("recall failed", "itemBarcode", barcode, "error", err)
		resp.Fail(err.Error())
		return resp
	}
	if res == nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	ensureMessage(&res.ResponseItem)
	return res
}

func (d *RequestDispatcher) PatronInformation(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) *model.PatronInformationResponse {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "patronInformation", inst)
	resp := &model.PatronInformationResponse{PatronBarcode: env.PatronBarcode}
	a, err := d.ilsAdapter(ctx, inst)
	if err != nil {
		resp.Fail(err.Error())
		return resp
	}
	res, err := a.LookupPatron(ctx, env.PatronBarcode)
	if err != nil {
		ctx.Logger().Error("patron information failed", "error", err)
		resp.Fail(err.Error())
		return resp
	}
	if res == nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	ensureMessage(&res.ResponseItem)
	return res
}

func (d *RequestDispatcher) RefileItemInILS(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) *model.RefileResponse {
	inst := d.policy.ResolveCallingInstitution(callInstitution, env)
	ctx = d.operationCtx(ctx, "refileItemInILS", inst)
	resp := &model.RefileResponse{}
	barcode, ok := env.PrimaryBarcode()
	if !ok {
		resp.Fail(model.RequestItemBarcodeNotFound)
		return resp
	}
	resp.ItemBarcode = barcode
	a, err := d.ilsAdapter(ctx, inst)
	if err != nil {
		resp.Fail(err.Error())
		return resp
	}
	res, err := a.RefileItem(ctx, barcode)
	if err != nil {
		ctx.Logger().Error("refile failed", "itemBarcode", barcode, "error", err)
		resp.Fail(err.Error())
		return resp
	}
	if res == nil {
		resp.Fail(model.IlsInvalidResponse)
		return resp
	}
	ensureMessage(&res.ResponseItem)
	return res
}

// PatronValidationBulk asks the patron validation connector of the requesting institution
// whether the patron may place requests.
func (d *RequestDispatcher) PatronValidationBulk(ctx common.ExtendedContext, requestingInstitution string, patronBarcode string) (bool, error) {
	ctx = d.operationCtx(ctx, "patronValidation", requestingInstitution)
	a, err := d.router.GetAdapter(ctx, requestingInstitution, lms.FamilyPatronValidation)
	if err != nil {
		ctx.Logger().Error("no patron validation connector for institution", "error", err)
		return false, err
	}
	ok, err := a.ValidatePatron(ctx, requestingInstitution, patronBarcode)
	if err != nil {
		ctx.Logger().Error("patron validation failed", "error", err)
		return false, err
	}
	return ok, nil
}
