// Package docs holds the OpenAPI description of the site API.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed swagger.json
var swaggerJSON []byte

// JSON returns the Swagger 2.0 document with basePath set to the prefix the
// API is mounted under.
func JSON(basePath string) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(swaggerJSON, &doc); err != nil {
		return nil, fmt.Errorf("decode swagger doc: %w", err)
	}
	if basePath == "" {
		basePath = "/"
	}
	doc["basePath"] = basePath
	return json.Marshal(doc)
}
