package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/indexdata/circbroker/common"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const RequestIdHeader = "X-Request-Id"

type ErrorMessage struct {
	Error string `json:"error"`
}

// requestCtx carries the caller's request id, or a fresh one, into the log fields.
func requestCtx(r *http.Request, operation string) common.ExtendedContext {
	requestId := strings.TrimSpace(r.Header.Get(RequestIdHeader))
	if requestId == "" {
		requestId = uuid.NewString()
	}
	return common.CreateExtCtxWithArgs(r.Context(), &common.LoggerArgs{
		RequestId: requestId,
		Operation: operation,
		Component: "api",
	})
}

func writeJsonResponse(w http.ResponseWriter, resp any) {
	writeJsonStatus(w, http.StatusOK, resp)
}

func writeJsonStatus(w http.ResponseWriter, status int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func addInternalError(ctx common.ExtendedContext, w http.ResponseWriter, err error) {
	ctx.Logger().Error("error serving api request", "error", err.Error())
	writeJsonStatus(w, http.StatusInternalServerError, ErrorMessage{Error: err.Error()})
}

func addBadRequestError(ctx common.ExtendedContext, w http.ResponseWriter, err error) {
	ctx.Logger().Warn("bad api request", "error", err.Error())
	writeJsonStatus(w, http.StatusBadRequest, ErrorMessage{Error: err.Error()})
}
