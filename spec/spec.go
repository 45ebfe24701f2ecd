// Package spec holds the OpenAPI 3 description of the pool logbook HTTP API.
package spec

import _ "embed"

// OpenAPI is served verbatim at GET /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
