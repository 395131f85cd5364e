package ncipclient

import (
	"context"

	"github.com/indexdata/circbroker/ncip"
)

type NcipClient interface {
	LookupItem(ctx context.Context, arg ncip.LookupItem) (*ncip.LookupItemResponse, error)

	LookupUser(ctx context.Context, arg ncip.LookupUser) (*ncip.LookupUserResponse, error)

	CheckOutItem(ctx context.Context, arg ncip.CheckOutItem) (*ncip.CheckOutItemResponse, error)

	CheckInItem(ctx context.Context, arg ncip.CheckInItem) (*ncip.CheckInItemResponse, error)

	RequestItem(ctx context.Context, arg ncip.RequestItem) (*ncip.RequestItemResponse, error)

	CancelRequestItem(ctx context.Context, arg ncip.CancelRequestItem) (*ncip.CancelRequestItemResponse, error)

	RecallItem(ctx context.Context, arg ncip.RecallItem) (*ncip.RecallItemResponse, error)

	CreateItem(ctx context.Context, arg ncip.CreateItem) (*ncip.CreateItemResponse, error)
}

type NcipError struct {
	Message string
	Problem ncip.Problem
}

func (e *NcipError) Error() string {
	s := e.Message
	if e.Problem.ProblemType.Text != "" {
		s += ": " + e.Problem.ProblemType.Text
	}
	if e.Problem.ProblemDetail != "" {
		s += ": " + e.Problem.ProblemDetail
	}
	return s
}
