package oapi

import _ "embed"

// OpenAPISpecYAML contains the OpenAPI document served by the broker.
//
//go:embed open-api.yaml
var OpenAPISpecYAML []byte
