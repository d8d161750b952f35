// Package v1 holds the HTTP API types and gin bindings generated from
// openapi.yaml, plus converters from the internal models.
package v1

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --package=v1 --generate=types -o types.gen.go openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --package=v1 --generate=gin -o server.gen.go openapi.yaml
