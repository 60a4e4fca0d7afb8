// Package servers holds the HTTP contract of the service: the OpenAPI document
// and the echo bindings generated from it.
package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yaml openapi.yml
