package oapi

//go:generate go tool oapi-codegen -config cfg.yaml open-api.yaml
