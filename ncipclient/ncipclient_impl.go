package ncipclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/indexdata/circbroker/httpclient"
	"github.com/indexdata/circbroker/ncip"
)

type NcipClientImpl struct {
	client                   *http.Client
	address                  string
	fromAgency               string
	toAgency                 string
	fromAgencyAuthentication string
}

func NewNcipClient(client *http.Client, address string, fromAgency string, toAgency string, fromAgencyAuthentication string) NcipClient {
	return &NcipClientImpl{
		client:                   client,
		address:                  address,
		fromAgency:               fromAgency,
		toAgency:                 toAgency,
		fromAgencyAuthentication: fromAgencyAuthentication,
	}
}

// exchange sends message and picks the expected response element from the reply.
func exchange[T any](ctx context.Context, n *NcipClientImpl, op string, message *ncip.NCIPMessage,
	pick func(*ncip.NCIPMessage) (*T, []ncip.Problem)) (*T, error) {
	ncipResponse, err := n.sendReceiveMessage(ctx, message)
	if err != nil {
		return nil, err
	}
	response, problems := pick(ncipResponse)
	if response == nil {
		return nil, fmt.Errorf("invalid NCIP response: missing response to %s", op)
	}
	return response, n.checkProblem(op, problems)
}

func (n *NcipClientImpl) LookupItem(ctx context.Context, lookup ncip.LookupItem) (*ncip.LookupItemResponse, error) {
	lookup.InitiationHeader = n.prepareHeader(lookup.InitiationHeader)
	return exchange(ctx, n, "NCIP lookup item", &ncip.NCIPMessage{LookupItem: &lookup},
		func(m *ncip.NCIPMessage) (*ncip.LookupItemResponse, []ncip.Problem) {
			if m.LookupItemResponse == nil {
				return nil, nil
			}
			return m.LookupItemResponse, m.LookupItemResponse.Problem
		})
}

func (n *NcipClientImpl) LookupUser(ctx context.Context, lookup ncip.LookupUser) (*ncip.LookupUserResponse, error) {
	lookup.InitiationHeader = n.prepareHeader(lookup.InitiationHeader)
	return exchange(ctx, n, "NCIP user lookup", &ncip.NCIPMessage{LookupUser: &lookup},
		func(m *ncip.NCIPMessage) (*ncip.LookupUserResponse, []ncip.Problem) {
			if m.LookupUserResponse == nil {
				return nil, nil
			}
			return m.LookupUserResponse, m.LookupUserResponse.Problem
		})
}

func (n *NcipClientImpl) CheckOutItem(ctx context.Context, request ncip.CheckOutItem) (*ncip.CheckOutItemResponse, error) {
	request.InitiationHeader = n.prepareHeader(request.InitiationHeader)
	return exchange(ctx, n, "NCIP check out item", &ncip.NCIPMessage{CheckOutItem: &request},
		func(m *ncip.NCIPMessage) (*ncip.CheckOutItemResponse, []ncip.Problem) {
			if m.CheckOutItemResponse == nil {
				return nil, nil
			}
			return m.CheckOutItemResponse, m.CheckOutItemResponse.Problem
		})
}

func (n *NcipClientImpl) CheckInItem(ctx context.Context, request ncip.CheckInItem) (*ncip.CheckInItemResponse, error) {
	request.InitiationHeader = n.prepareHeader(request.InitiationHeader)
	return exchange(ctx, n, "NCIP check in item", &ncip.NCIPMessage{CheckInItem: &request},
		func(m *ncip.NCIPMessage) (*ncip.CheckInItemResponse, []ncip.Problem) {
			if m.CheckInItemResponse == nil {
				return nil, nil
			}
			return m.CheckInItemResponse, m.CheckInItemResponse.Problem
		})
}

func (n *NcipClientImpl) RequestItem(ctx context.Context, request ncip.RequestItem) (*ncip.RequestItemResponse, error) {
	request.InitiationHeader = n.prepareHeader(request.InitiationHeader)
	return exchange(ctx, n, "NCIP request item", &ncip.NCIPMessage{RequestItem: &request},
		func(m *ncip.NCIPMessage) (*ncip.RequestItemResponse, []ncip.Problem) {
			if m.RequestItemResponse == nil {
				return nil, nil
			}
			return m.RequestItemResponse, m.RequestItemResponse.Problem
		})
}

func (n *NcipClientImpl) CancelRequestItem(ctx context.Context, request ncip.CancelRequestItem) (*ncip.CancelRequestItemResponse, error) {
	request.InitiationHeader = n.prepareHeader(request.InitiationHeader)
	return exchange(ctx, n, "NCIP cancel request item", &ncip.NCIPMessage{CancelRequestItem: &request},
		func(m *ncip.NCIPMessage) (*ncip.CancelRequestItemResponse, []ncip.Problem) {
			if m.CancelRequestItemResponse == nil {
				return nil, nil
			}
			return m.CancelRequestItemResponse, m.CancelRequestItemResponse.Problem
		})
}

func (n *NcipClientImpl) RecallItem(ctx context.Context, request ncip.RecallItem) (*ncip.RecallItemResponse, error) {
	request.InitiationHeader = n.prepareHeader(request.InitiationHeader)
	return exchange(ctx, n, "NCIP recall item", &ncip.NCIPMessage{RecallItem: &request},
		func(m *ncip.NCIPMessage) (*ncip.RecallItemResponse, []ncip.Problem) {
			if m.RecallItemResponse == nil {
				return nil, nil
			}
			return m.RecallItemResponse, m.RecallItemResponse.Problem
		})
}

func (n *NcipClientImpl) CreateItem(ctx context.Context, request ncip.CreateItem) (*ncip.CreateItemResponse, error) {
	request.InitiationHeader = n.prepareHeader(request.InitiationHeader)
	return exchange(ctx, n, "NCIP create item", &ncip.NCIPMessage{CreateItem: &request},
		func(m *ncip.NCIPMessage) (*ncip.CreateItemResponse, []ncip.Problem) {
			if m.CreateItemResponse == nil {
				return nil, nil
			}
			return m.CreateItemResponse, m.CreateItemResponse.Problem
		})
}

func (n *NcipClientImpl) checkProblem(op string, responseProblems []ncip.Problem) error {
	if len(responseProblems) > 0 {
		return &NcipError{
			Message: op + " failed",
			Problem: responseProblems[0],
		}
	}
	return nil
}

func (n *NcipClientImpl) prepareHeader(header *ncip.InitiationHeader) *ncip.InitiationHeader {
	if header == nil {
		header = &ncip.InitiationHeader{}
	}
	fromAgency := n.fromAgency
	if fromAgency == "" {
		fromAgency = "default-from-agency"
	}
	header.FromAgencyId.AgencyId = ncip.SchemeValuePair{
		Text: fromAgency,
	}
	toAgency := n.toAgency
	if toAgency == "" {
		toAgency = "default-to-agency"
	}
	header.ToAgencyId.AgencyId = ncip.SchemeValuePair{
		Text: toAgency,
	}
	header.FromAgencyAuthentication = n.fromAgencyAuthentication
	return header
}

func (n *NcipClientImpl) sendReceiveMessage(ctx context.Context, message *ncip.NCIPMessage) (*ncip.NCIPMessage, error) {
	if n.address == "" {
		return nil, fmt.Errorf("missing NCIP address in configuration")
	}
	message.Version = ncip.NCIP_V2_02_XSD

	var respMessage ncip.NCIPMessage
	err := httpclient.NewClient().PostXml(ctx, n.client, n.address, message, &respMessage)
	if err != nil {
		return nil, fmt.Errorf("NCIP message exchange failed: %w", err)
	}
	if len(respMessage.Problem) > 0 {
		return nil, &NcipError{
			Message: "NCIP message processing failed",
			Problem: respMessage.Problem[0],
		}
	}
	return &respMessage, nil
}
