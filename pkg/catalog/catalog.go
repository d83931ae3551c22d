package catalog

import (
	"sort"
	"strings"
)

// Attribute describes a single configured attribute of a category type.
type Attribute struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Mandatory   bool   `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
}

// TypeDescriptor lists the attributes of one concrete type of a category,
// for example the "standard" or "priority" flavours of Queue.
type TypeDescriptor struct {
	Attributes map[string]Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Descriptor is the metadata registered for a category.
type Descriptor struct {
	Category string                    `json:"category" yaml:"category"`
	Types    map[string]TypeDescriptor `json:"types,omitempty" yaml:"types,omitempty"`
}

// TypeNames returns the descriptor's type names in sorted order.
func (d Descriptor) TypeNames() []string {
	if len(d.Types) == 0 {
		return nil
	}
	out := make([]string, 0, len(d.Types))
	for name := range d.Types {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Accessor is the metadata accessor contract. Metadata reports the descriptor
// registered under the exact category name; absence means the category does
// not exist.
type Accessor interface {
	Metadata(category string) (Descriptor, bool)
}

// Catalog is an in-memory Accessor.
type Catalog struct {
	entries map[string]Descriptor
}

var _ Accessor = (*Catalog)(nil)

// New constructs a catalog seeded with descriptors. Descriptors with an empty
// category are ignored; later duplicates replace earlier ones.
func New(descriptors ...Descriptor) *Catalog {
	c := &Catalog{entries: make(map[string]Descriptor, len(descriptors))}
	for _, desc := range descriptors {
		c.Register(desc)
	}
	return c
}

// Register adds or replaces a descriptor.
func (c *Catalog) Register(desc Descriptor) {
	if c == nil {
		return
	}
	name := strings.TrimSpace(desc.Category)
	if name == "" {
		return
	}
	desc.Category = name
	if c.entries == nil {
		c.entries = make(map[string]Descriptor)
	}
	c.entries[name] = desc
}

// Remove deletes a category, reporting whether it existed.
func (c *Catalog) Remove(category string) bool {
	if c == nil {
		return false
	}
	if _, ok := c.entries[category]; !ok {
		return false
	}
	delete(c.entries, category)
	return true
}

// Metadata implements Accessor.
func (c *Catalog) Metadata(category string) (Descriptor, bool) {
	if c == nil || category == "" {
		return Descriptor{}, false
	}
	desc, ok := c.entries[category]
	return desc, ok
}

// Categories returns the registered category names in sorted order.
func (c *Catalog) Categories() []string {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.entries))
	for name := range c.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len reports how many categories are registered.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
