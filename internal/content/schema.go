// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	schemasOnce sync.Once
	schemas     map[string]*gojsonschema.Schema
	schemasErr  error
)

func loadSchemas() (map[string]*gojsonschema.Schema, error) {
	schemasOnce.Do(func() {
		out := make(map[string]*gojsonschema.Schema, len(Keys))
		for _, key := range Keys {
			raw, err := schemaFS.ReadFile("schemas/" + key + ".schema.json")
			if err != nil {
				schemasErr = fmt.Errorf("reading schema for %s: %w", key, err)
				return
			}
			s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
			if err != nil {
				schemasErr = fmt.Errorf("compiling schema for %s: %w", key, err)
				return
			}
			out[key] = s
		}
		schemas = out
	})
	return schemas, schemasErr
}

// ValidatePayload checks a stored payload against the JSON schema for key.
// Keys without a schema pass. It satisfies recordstore.Validator.
func ValidatePayload(key string, raw []byte) error {
	all, err := loadSchemas()
	if err != nil {
		return err
	}
	schema, ok := all[key]
	if !ok {
		return nil
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validating %s: %w", key, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed for %s: %s", key, strings.Join(msgs, "; "))
}
