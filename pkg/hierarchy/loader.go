package hierarchy

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument is returned when a structure document has no content.
	ErrEmptyDocument = errors.New("hierarchy: structure document is empty")
	// ErrDuplicateID is returned when two objects share an id.
	ErrDuplicateID = errors.New("hierarchy: duplicate object id")
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	newID    func() string
	rootType string
}

// WithIDGenerator overrides how ids are assigned to objects that omit one.
// Random UUIDs are used by default.
func WithIDGenerator(fn func() string) ParseOption {
	return func(cfg *parseConfig) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

// WithRootType overrides the type assigned to top-level objects.
func WithRootType(typeName string) ParseOption {
	return func(cfg *parseConfig) {
		if trimmed := strings.TrimSpace(typeName); trimmed != "" {
			cfg.rootType = trimmed
		}
	}
}

// LoadFile reads and parses a structure document from fsys.
func LoadFile(fsys fs.FS, name string, opts ...ParseOption) (*Tree, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: read %s: %w", name, err)
	}
	tree, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: parse %s: %w", name, err)
	}
	return tree, nil
}

// Parse builds a Tree from a JSON or YAML structure document. The document is
// either a single broker object or a mapping with a "brokers" list. Each
// object carries "id" and "name"; children are listed under the pluralised
// lower-case child type ("virtualhostnodes", "virtualhosts"). Document order
// is preserved.
func Parse(data []byte, opts ...ParseOption) (*Tree, error) {
	cfg := parseConfig{
		newID:    uuid.NewString,
		rootType: TypeBroker,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmptyDocument
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("hierarchy: invalid JSON or YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, errors.New("hierarchy: structure document must be a mapping")
	}

	b := &builder{cfg: cfg, seen: make(map[string]struct{})}

	var roots []*ManagementObject
	if list := mappingValue(top, pluralize(cfg.rootType)); list != nil {
		if list.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("hierarchy: %q must be a list", pluralize(cfg.rootType))
		}
		for _, item := range list.Content {
			root, err := b.object(item, cfg.rootType, nil)
			if err != nil {
				return nil, err
			}
			roots = append(roots, root)
		}
	} else {
		root, err := b.object(top, cfg.rootType, nil)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}

	return NewTree(roots...), nil
}

type builder struct {
	cfg  parseConfig
	seen map[string]struct{}
}

func (b *builder) object(node *yaml.Node, typeName string, parent *ManagementObject) (*ManagementObject, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("hierarchy: %s entry at line %d must be a mapping", typeName, node.Line)
	}

	obj := &ManagementObject{Type: typeName}
	var childLists []*yaml.Node
	var childKeys []string

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "id":
			obj.ID = strings.TrimSpace(value.Value)
		case "name":
			obj.Name = value.Value
		case "type":
			if t := strings.TrimSpace(value.Value); t != "" {
				obj.Type = t
			}
		default:
			if value.Kind == yaml.SequenceNode {
				childKeys = append(childKeys, key)
				childLists = append(childLists, value)
			}
		}
	}

	if obj.ID == "" {
		obj.ID = b.cfg.newID()
	}
	if _, dup := b.seen[obj.ID]; dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, obj.ID)
	}
	b.seen[obj.ID] = struct{}{}

	if parent != nil {
		parent.AddChild(obj)
	}

	for idx, list := range childLists {
		childType := singularize(childKeys[idx])
		for _, item := range list.Content {
			if item.Kind != yaml.MappingNode {
				// scalar lists (attributes, tags) are not part of the tree
				continue
			}
			if _, err := b.object(item, childType, obj); err != nil {
				return nil, err
			}
		}
	}
	return obj, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// pluralize mirrors the management structure naming: lower-case type name
// plus "s", or "es" when the name already ends in "s".
func pluralize(typeName string) string {
	name := strings.ToLower(typeName)
	if strings.HasSuffix(name, "s") {
		return name + "es"
	}
	return name + "s"
}

func singularize(key string) string {
	name := strings.ToLower(key)
	switch {
	case strings.HasSuffix(name, "ses"):
		return strings.TrimSuffix(name, "es")
	case strings.HasSuffix(name, "s"):
		return strings.TrimSuffix(name, "s")
	default:
		return name
	}
}
