package app

import (
	"fmt"
	"os"

	"github.com/indexdata/circbroker/lms"
	"github.com/indexdata/circbroker/service"
	"gopkg.in/yaml.v3"
)

// ConnectorsFile is the YAML document named by CONNECTORS_CONFIG:
//
//	deliveryByFieldInstitution: NYPL
//	defaultPickupLocations:
//	  PUL: rcpcirc
//	connectors:
//	  - institution: PUL
//	    family: general-ils
//	    type: ncip
//	    settings:
//	      address: https://ils.example.org/ncip
//	      from_agency: RECAP
type ConnectorsFile struct {
	service.PolicyConfig `yaml:",inline"`
	Connectors           []lms.ConnectorConfig `yaml:"connectors"`
}

// DefaultConnectorsFile binds the partner institutions to manual connectors.
func DefaultConnectorsFile() ConnectorsFile {
	var connectors []lms.ConnectorConfig
	for _, inst := range []string{"PUL", "CUL", "NYPL"} {
		connectors = append(connectors,
			lms.ConnectorConfig{Institution: inst, Family: lms.FamilyGeneralIls, Type: lms.ConnectorTypeManual},
			lms.ConnectorConfig{Institution: inst, Family: lms.FamilyPatronValidation, Type: lms.ConnectorTypeManual})
	}
	return ConnectorsFile{
		PolicyConfig: service.DefaultPolicyConfig(),
		Connectors:   connectors,
	}
}

func LoadConnectorsFile(path string) (ConnectorsFile, error) {
	if path == "" {
		return DefaultConnectorsFile(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ConnectorsFile{}, fmt.Errorf("failed to read connectors config: %w", err)
	}
	var file ConnectorsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return ConnectorsFile{}, fmt.Errorf("failed to parse connectors config %s: %w", path, err)
	}
	if file.DeliveryByFieldInstitution == "" && len(file.DefaultPickupLocations) == 0 {
		file.PolicyConfig = service.DefaultPolicyConfig()
	}
	return file, nil
}
