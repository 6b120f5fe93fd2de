/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

// Package openapi embeds the document describing the payroll API.
package openapi

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// GetSwagger returns the parsed and validated API document.  Every call returns a new copy so that callers are free
// to modify it.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to load API document: %w", err)
	}
	if err := swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid API document: %w", err)
	}
	return swagger, nil
}

