// Package data ships the default parts catalog.
package data

import _ "embed"

//go:embed catalog.yaml
var CatalogYAML []byte
