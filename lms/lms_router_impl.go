package lms

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/indexdata/circbroker/common"
)

var ErrUnknownInstitutionConnector = errors.New("no connector configured for institution")

type bindingKey struct {
	institution string
	family      ProtocolFamily
}

type lmsRouterImpl struct {
	adapters map[bindingKey]LmsAdapter
}

// NewLmsRouter creates one adapter per configured binding. An empty family means general-ils.
func NewLmsRouter(configs []ConnectorConfig, client *http.Client) (LmsRouter, error) {
	router := &lmsRouterImpl{adapters: make(map[bindingKey]LmsAdapter, len(configs))}
	for _, cfg := range configs {
		inst := common.NormalizeInstitution(cfg.Institution)
		if inst == "" {
			return nil, errors.New("connector binding without institution")
		}
		family := cfg.Family
		if family == "" {
			family = FamilyGeneralIls
		}
		if family != FamilyGeneralIls && family != FamilyPatronValidation {
			return nil, fmt.Errorf("unknown protocol family %q for institution %s", family, inst)
		}
		key := bindingKey{institution: inst, family: family}
		if _, dup := router.adapters[key]; dup {
			return nil, fmt.Errorf("duplicate %s connector for institution %s", family, inst)
		}
		adapter, err := CreateLmsAdapter(cfg.Type, cfg.Settings, client)
		if err != nil {
			return nil, fmt.Errorf("connector for institution %s: %w", inst, err)
		}
		router.adapters[key] = adapter
	}
	return router, nil
}

func CreateLmsAdapter(connectorType string, settings map[string]any, client *http.Client) (LmsAdapter, error) {
	if settings == nil {
		settings = map[string]any{}
	}
	switch connectorType {
	case ConnectorTypeNcip:
		return CreateLmsAdapterNcip(settings, client)
	case ConnectorTypeRest:
		return CreateLmsAdapterRest(settings, client)
	case ConnectorTypeManual, "":
		return CreateLmsAdapterManual(), nil
	}
	return nil, fmt.Errorf("unknown connector type %q", connectorType)
}

func (r *lmsRouterImpl) GetAdapter(ctx common.ExtendedContext, institution string, family ProtocolFamily) (LmsAdapter, error) {
	adapter, ok := r.adapters[bindingKey{institution: common.NormalizeInstitution(institution), family: family}]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownInstitutionConnector, institution, family)
	}
	ctx.Logger().Debug("connector resolved", "institution", institution, "family", family, "connector", fmt.Sprintf("%T", adapter))
	return adapter, nil
}
