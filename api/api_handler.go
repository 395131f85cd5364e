package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
	"github.com/indexdata/circbroker/oapi"
	"github.com/indexdata/circbroker/service"
	"github.com/indexdata/circbroker/vcs"
)

const REQUEST_ITEM_PATH = "/requestItem"

var ErrBodyTooLarge = errors.New("request body too large")

type ApiHandler struct {
	dispatcher     *service.RequestDispatcher
	validator      *service.ItemValidator
	edd            *service.EddService
	maxMessageSize int
}

func NewApiHandler(dispatcher *service.RequestDispatcher, validator *service.ItemValidator, edd *service.EddService, maxMessageSize int) ApiHandler {
	return ApiHandler{
		dispatcher:     dispatcher,
		validator:      validator,
		edd:            edd,
		maxMessageSize: maxMessageSize,
	}
}

type envelopeOperation func(ctx common.ExtendedContext, env *model.RequestEnvelope, callInstitution string) any

var _ oapi.ServerInterface = (*ApiHandler)(nil)

func (a *ApiHandler) Get(w http.ResponseWriter, r *http.Request) {
	var index oapi.Index
	index.Revision = vcs.GetCommit()
	index.Signature = vcs.GetSignature()
	writeJsonResponse(w, index)
}

func (a *ApiHandler) CheckoutItem(w http.ResponseWriter, r *http.Request, params oapi.CheckoutItemParams) {
	a.serveEnvelope(w, r, "checkoutItem", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, inst string) any {
		return a.dispatcher.CheckoutItem(ctx, env, inst)
	})
}

func (a *ApiHandler) CheckinItem(w http.ResponseWriter, r *http.Request, params oapi.CheckinItemParams) {
	a.serveEnvelope(w, r, "checkinItem", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, inst string) any {
		return a.dispatcher.CheckinItem(ctx, env, inst)
	})
}

func (a *ApiHandler) HoldItem(w http.ResponseWriter, r *http.Request, params oapi.HoldItemParams) {
	a.serveEnvelope(w, r, "holdItem", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, inst string) any {
		return a.dispatcher.HoldItem(ctx, env, inst)
	})
}

func (a *ApiHandler) CreateBib(w http.ResponseWriter, r *http.Request, params oapi.CreateBibParams) {
	a.serveEnvelope(w, r, "createBib", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, inst string) any {
		return a.dispatcher.CreateBibliographicItem(ctx, env, inst)
	})
}

func (a *ApiHandler) ItemInformation(w http.ResponseWriter, r *http.Request, params oapi.ItemInformationParams) {
	a.serveEnvelope(w, r, "itemInformation", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, inst string) any {
		return a.dispatcher.ItemInformation(ctx, env, inst)
	})
}

func (a *ApiHandler) RecallItem(w http.ResponseWriter, r *http.Request, params oapi.RecallItemParams) {
	a.serveEnvelope(w, r, "recallItem", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, inst string) any {
		return a.dispatcher.RecallItem(ctx, env, inst)
	})
}

func (a *ApiHandler) PatronInformation(w http.ResponseWriter, r *http.Request, params oapi.PatronInformationParams) {
	a.serveEnvelope(w, r, "patronInformation", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, inst string) any {
		return a.dispatcher.PatronInformation(ctx, env, inst)
	})
}

func (a *ApiHandler) RefileItemInILS(w http.ResponseWriter, r *http.Request, params oapi.RefileItemInILSParams) {
	a.serveEnvelope(w, r, "refileItemInILS", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, inst string) any {
		return a.dispatcher.RefileItemInILS(ctx, env, inst)
	})
}

// EddRequest stores the request locally; callInstitution plays no part.
func (a *ApiHandler) EddRequest(w http.ResponseWriter, r *http.Request, params oapi.EddRequestParams) {
	a.serveEnvelope(w, r, "eddRequest", params.CallInstitution, func(ctx common.ExtendedContext, env *model.RequestEnvelope, _ string) any {
		return a.edd.EddRequestItem(ctx, env)
	})
}

func (a *ApiHandler) readBody(r *http.Request, dst any) error {
	limit := int64(a.maxMessageSize)
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(body)) > limit {
		return ErrBodyTooLarge
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return errors.New("request body is empty")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func (a *ApiHandler) readEnvelope(ctx common.ExtendedContext, w http.ResponseWriter, r *http.Request) (*model.RequestEnvelope, bool) {
	var env model.RequestEnvelope
	if err := a.readBody(r, &env); err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			ctx.Logger().Warn("bad api request", "error", err.Error())
			writeJsonStatus(w, http.StatusRequestEntityTooLarge, ErrorMessage{Error: err.Error()})
		} else {
			addBadRequestError(ctx, w, err)
		}
		return nil, false
	}
	return &env, true
}

func (a *ApiHandler) serveEnvelope(w http.ResponseWriter, r *http.Request, operation string, callInstitution *string, op envelopeOperation) {
	ctx := requestCtx(r, operation)
	env, ok := a.readEnvelope(ctx, w, r)
	if !ok {
		return
	}
	writeJsonResponse(w, op(ctx, env, derefString(callInstitution)))
}

// CancelHoldItem answers 204 when the request names no item.
func (a *ApiHandler) CancelHoldItem(w http.ResponseWriter, r *http.Request, params oapi.CancelHoldItemParams) {
	ctx := requestCtx(r, "cancelHoldItem")
	env, ok := a.readEnvelope(ctx, w, r)
	if !ok {
		return
	}
	res, done := a.dispatcher.CancelHoldItem(ctx, env, derefString(params.CallInstitution))
	if !done {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJsonResponse(w, res)
}

// ValidateItemRequest answers with the plain reason text, 200 when valid and 400 when rejected.
func (a *ApiHandler) ValidateItemRequest(w http.ResponseWriter, r *http.Request) {
	ctx := requestCtx(r, "validateItemRequest")
	env, ok := a.readEnvelope(ctx, w, r)
	if !ok {
		return
	}
	out, err := a.validator.Validate(ctx, env)
	if err != nil {
		addInternalError(ctx, w, err)
		return
	}
	if !out.Valid {
		ctx.Logger().Info("item request rejected", "reason", out.Reason)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(out.Status)
	_, _ = w.Write([]byte(out.Reason))
}

func (a *ApiHandler) PatronValidationBulkRequest(w http.ResponseWriter, r *http.Request) {
	ctx := requestCtx(r, "patronValidationBulkRequest")
	var req oapi.PatronValidationRequest
	if err := a.readBody(r, &req); err != nil {
		addBadRequestError(ctx, w, err)
		return
	}
	if strings.TrimSpace(req.RequestingInstitution) == "" {
		addBadRequestError(ctx, w, errors.New("requestingInstitution must be specified"))
		return
	}
	patronBarcode := derefString(req.PatronBarcode)
	resp := model.PatronValidationResponse{
		RequestingInstitution: req.RequestingInstitution,
		PatronBarcode:         patronBarcode,
	}
	valid, err := a.dispatcher.PatronValidationBulk(ctx, req.RequestingInstitution, patronBarcode)
	if err != nil {
		resp.ErrorMessage = err.Error()
	}
	resp.Valid = valid
	writeJsonResponse(w, resp)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
