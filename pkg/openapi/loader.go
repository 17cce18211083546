package openapi

import (
	"fmt"
	"net/url"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// LoadDocument loads an OpenAPI document from a local file path or an HTTP(S) URL
func LoadDocument(input string) (*openapi3.T, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return LoadDocumentWithLoader(loader, input)
}

// LoadDocumentWithLoader loads an OpenAPI document using a custom loader
func LoadDocumentWithLoader(loader *openapi3.Loader, input string) (*openapi3.T, error) {
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return loader.LoadFromURI(u)
	}
	return loader.LoadFromFile(input)
}

// ValidateDocument validates an OpenAPI document
func ValidateDocument(input string) error {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	doc, err := LoadDocumentWithLoader(loader, input)
	if err != nil {
		return err
	}
	return doc.Validate(loader.Context)
}

// LoadSchemaRegistry reads the document at path and returns its named
// schemas as generic raw nodes, the form the resolution engine consumes.
// OpenAPI 3.x documents are read from components.schemas; Swagger 2.0
// documents fall back to definitions. YAML and JSON are both accepted.
func LoadSchemaRegistry(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractSchemaRegistry(data)
}

// ExtractSchemaRegistry extracts the named-schema mapping from raw
// document bytes.
func ExtractSchemaRegistry(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	if components, ok := doc["components"].(map[string]any); ok {
		if schemas, ok := components["schemas"].(map[string]any); ok {
			return schemas, nil
		}
	}
	if definitions, ok := doc["definitions"].(map[string]any); ok {
		return definitions, nil
	}
	return map[string]any{}, nil
}
