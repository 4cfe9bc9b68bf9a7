// Package openapi embeds the OpenAPI document of the REST API.
package openapi

import _ "embed"

// Document is the OpenAPI 3 description served at /openapi.json.
//
//go:embed openapi.json
var Document []byte
