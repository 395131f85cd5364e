package service

import (
	"strings"

	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
)

// PolicyConfig holds the per-institution request policy loaded from the connectors file.
type PolicyConfig struct {
	// institution whose pickup location is taken from the delivery location field
	DeliveryByFieldInstitution string            `yaml:"deliveryByFieldInstitution"`
	DefaultPickupLocations     map[string]string `yaml:"defaultPickupLocations"`
}

func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		DeliveryByFieldInstitution: "NYPL",
		DefaultPickupLocations: map[string]string{
			"PUL":  "rcpcirc",
			"CUL":  "CIRCrecap",
			"NYPL": "lb",
		},
	}
}

type InstitutionPolicy struct {
	deliveryByField string
	pickup          map[string]string
}

func NewInstitutionPolicy(cfg PolicyConfig) *InstitutionPolicy {
	pickup := make(map[string]string, len(cfg.DefaultPickupLocations))
	for inst, loc := range cfg.DefaultPickupLocations {
		pickup[common.NormalizeInstitution(inst)] = loc
	}
	return &InstitutionPolicy{
		deliveryByField: common.NormalizeInstitution(cfg.DeliveryByFieldInstitution),
		pickup:          pickup,
	}
}

// ResolveCallingInstitution returns the explicit institution verbatim, falling back to
// the item owning institution of the request when it is blank.
func (p *InstitutionPolicy) ResolveCallingInstitution(explicit string, env *model.RequestEnvelope) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return env.ItemOwningInstitution
}

func (p *InstitutionPolicy) ResolvePickupLocation(env *model.RequestEnvelope, institution string) string {
	inst := common.NormalizeInstitution(institution)
	if p.deliveryByField != "" && inst == p.deliveryByField {
		return env.DeliveryLocation
	}
	if strings.TrimSpace(env.PickupLocation) != "" {
		return env.PickupLocation
	}
	return p.pickup[inst]
}
