package lms

import (
	"github.com/indexdata/circbroker/common"
)

type ProtocolFamily string

const (
	FamilyGeneralIls       ProtocolFamily = "general-ils"
	FamilyPatronValidation ProtocolFamily = "patron-validation"
)

const (
	ConnectorTypeNcip   = "ncip"
	ConnectorTypeRest   = "rest"
	ConnectorTypeManual = "manual"
)

// LmsRouter resolves the connector bound to an institution for a protocol family.
// Bindings are fixed at construction so one router is shared by all requests.
type LmsRouter interface {
	GetAdapter(ctx common.ExtendedContext, institution string, family ProtocolFamily) (LmsAdapter, error)
}

// ConnectorConfig binds one institution and family to a connector variant.
type ConnectorConfig struct {
	Institution string         `yaml:"institution"`
	Family      ProtocolFamily `yaml:"family"`
	Type        string         `yaml:"type"`
	Settings    map[string]any `yaml:"settings"`
}
