package servers

import (
	_ "embed"
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var rawSpec []byte

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, err
	}
	if err := swagger.Validate(loader.Context); err != nil {
		return nil, err
	}
	return swagger, nil
}

// SpecJSON renders the OpenAPI document as JSON for /openapi.json and Swagger UI.
func SpecJSON() ([]byte, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(swagger)
}
