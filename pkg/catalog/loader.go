package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when a catalog document defines no categories.
var ErrEmptyCatalog = errors.New("catalog: document defines no categories")

// DefaultTypeName is used for categories whose schema has no oneOf variants.
const DefaultTypeName = "default"

// metadataKey wraps the category map in console-style documents.
const metadataKey = "metadata"

// Parse reads a JSON or YAML metadata document. The document maps category
// names to their types and each type to its attributes, optionally wrapped in
// a top-level "metadata" key:
//
//	metadata:
//	  Queue:
//	    standard:
//	      attributes:
//	        name: {type: String, mandatory: true}
func Parse(data []byte) (*Catalog, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmptyCatalog
	}

	categories, err := decodeCategories(data)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	cat := New()
	for name, types := range categories {
		cat.Register(Descriptor{Category: name, Types: types})
	}
	return cat, nil
}

// decodeCategories accepts either a bare category map or one wrapped under a
// top-level "metadata" key. When the wrapper key is present its value is used
// even if empty.
func decodeCategories(data []byte) (map[string]map[string]TypeDescriptor, error) {
	var categories map[string]map[string]TypeDescriptor

	var jsonTop map[string]json.RawMessage
	if err := json.Unmarshal(data, &jsonTop); err == nil {
		if raw, ok := jsonTop[metadataKey]; ok {
			if err := json.Unmarshal(raw, &categories); err != nil {
				return nil, fmt.Errorf("catalog: decode metadata: %w", err)
			}
			return categories, nil
		}
		if err := json.Unmarshal(data, &categories); err != nil {
			return nil, fmt.Errorf("catalog: decode categories: %w", err)
		}
		return categories, nil
	}

	var yamlTop map[string]yaml.Node
	if err := yaml.Unmarshal(data, &yamlTop); err != nil {
		return nil, errors.New("catalog: invalid JSON or YAML metadata document")
	}
	if node, ok := yamlTop[metadataKey]; ok {
		if err := node.Decode(&categories); err != nil {
			return nil, fmt.Errorf("catalog: decode metadata: %w", err)
		}
		return categories, nil
	}
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("catalog: decode categories: %w", err)
	}
	return categories, nil
}

// LoadOpenAPI builds a catalog from the component schemas of an OpenAPI
// document. Each schema name becomes a category. A schema with oneOf variants
// contributes one type per variant, named after the referenced schema;
// otherwise the schema itself is registered as DefaultTypeName. Properties
// become attributes and required properties are mandatory.
func LoadOpenAPI(ctx context.Context, data []byte) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: load openapi document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, ErrEmptyCatalog
	}

	cat := New()
	for name, ref := range spec.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		desc := Descriptor{Category: name, Types: make(map[string]TypeDescriptor)}
		if len(ref.Value.OneOf) > 0 {
			for idx, variant := range ref.Value.OneOf {
				if variant == nil || variant.Value == nil {
					continue
				}
				typeName := refName(variant.Ref)
				if typeName == "" {
					typeName = fmt.Sprintf("%s%d", DefaultTypeName, idx)
				}
				desc.Types[typeName] = typeFromSchema(variant.Value)
			}
		} else {
			desc.Types[DefaultTypeName] = typeFromSchema(ref.Value)
		}
		cat.Register(desc)
	}
	return cat, nil
}

func typeFromSchema(schema *openapi3.Schema) TypeDescriptor {
	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	attrs := make(map[string]Attribute, len(schema.Properties))
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prop := schema.Properties[name]
		attr := Attribute{}
		if prop != nil && prop.Value != nil {
			attr.Type = schemaType(prop.Value.Type)
			attr.Description = prop.Value.Description
		}
		_, attr.Mandatory = required[name]
		attrs[name] = attr
	}
	if len(attrs) == 0 {
		attrs = nil
	}
	return TypeDescriptor{Attributes: attrs}
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	return strings.Join(types.Slice(), ",")
}

func refName(ref string) string {
	if ref == "" {
		return ""
	}
	return path.Base(ref)
}

// Format names a catalog document flavour.
type Format string

const (
	FormatMetadata Format = "yaml"
	FormatOpenAPI  Format = "openapi"
)

// LoadFile reads name from fsys and parses it using the given format.
func LoadFile(ctx context.Context, fsys fs.FS, name string, format Format) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", name, err)
	}
	var cat *Catalog
	switch format {
	case FormatOpenAPI:
		cat, err = LoadOpenAPI(ctx, data)
	case FormatMetadata, "json", "":
		cat, err = Parse(data)
	default:
		return nil, fmt.Errorf("catalog: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", name, err)
	}
	return cat, nil
}
