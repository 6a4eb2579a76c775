package servers

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document the server code is generated from.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed and validated OpenAPI document. External
// references are not allowed.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	if err = swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("error validating Swagger: %w", err)
	}
	return swagger, nil
}
