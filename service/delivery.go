package service

import (
	"strings"

	"github.com/indexdata/circbroker/adapter"
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
)

type DeliveryCheck int

const (
	DeliveryInvalidDeliveryCode DeliveryCheck = -1
	DeliveryInvalidCustomerCode DeliveryCheck = 0
	DeliveryAllowed             DeliveryCheck = 1
)

func (d DeliveryCheck) String() string {
	switch d {
	case DeliveryAllowed:
		return "ALLOWED"
	case DeliveryInvalidCustomerCode:
		return "INVALID_CUSTOMER_CODE"
	case DeliveryInvalidDeliveryCode:
		return "INVALID_DELIVERY_CODE"
	}
	return "UNKNOWN"
}

type DeliveryValidator struct {
	customerCodes adapter.CustomerCodeLookupAdapter
}

func NewDeliveryValidator(customerCodes adapter.CustomerCodeLookupAdapter) *DeliveryValidator {
	return &DeliveryValidator{customerCodes: customerCodes}
}

// CheckDeliveryLocation decides whether the delivery location of the request may receive an
// item carrying itemCustomerCode. The delivery location must itself be a known customer code.
// Requests from the owning institution are further limited by the delivery restrictions of the
// item's own customer code; requests from any other institution are allowed.
func (v *DeliveryValidator) CheckDeliveryLocation(ctx common.ExtendedContext, itemCustomerCode string, env *model.RequestEnvelope) (DeliveryCheck, error) {
	delivery, err := v.customerCodes.FindByCode(ctx, env.DeliveryLocation)
	if err != nil {
		return DeliveryInvalidCustomerCode, err
	}
	if delivery == nil || !strings.EqualFold(delivery.Code, env.DeliveryLocation) {
		return DeliveryInvalidCustomerCode, nil
	}
	if !common.SameInstitution(env.ItemOwningInstitution, env.RequestingInstitution) {
		return DeliveryAllowed, nil
	}
	own, err := v.customerCodes.FindByCode(ctx, itemCustomerCode)
	if err != nil {
		return DeliveryInvalidDeliveryCode, err
	}
	if own == nil {
		ctx.Logger().Warn("customer code of item not found, delivery refused", "customerCode", itemCustomerCode)
		return DeliveryInvalidDeliveryCode, nil
	}
	if strings.TrimSpace(own.DeliveryRestrictions) != "" && strings.Contains(own.DeliveryRestrictions, env.DeliveryLocation) {
		return DeliveryAllowed, nil
	}
	return DeliveryInvalidDeliveryCode, nil
}
