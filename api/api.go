// Package api embeds the service's OpenAPI contract and exposes it as a
// parsed document.
package api

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var spec []byte

// GetSwagger parses and validates the embedded OpenAPI document. Served at
// /openapi.json so clients can discover the contract at runtime.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}
