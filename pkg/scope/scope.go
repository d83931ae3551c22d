// Package scope derives the selectable scope targets of a dialog from a
// management hierarchy: every broker followed by every virtual host.
package scope

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-querydialog/pkg/hierarchy"
)

// ErrMalformedHierarchy reports a structure that violates the hierarchy
// contract, such as a virtual host without a parent.
var ErrMalformedHierarchy = errors.New("scope: malformed hierarchy")

// VirtualHostPrefix starts every virtual host label.
const VirtualHostPrefix = "VH:"

// Entry is a selectable scope target.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Result is a point-in-time snapshot of the selectable targets. Every entry
// id is a key of Lookup and every Lookup key has an entry.
type Result struct {
	Entries   []Entry
	Lookup    map[string]*hierarchy.ManagementObject
	DefaultID string
}

// BuildEntries queries structure for brokers and virtual hosts and returns
// them in that order, each group in provider order. DefaultID is the first
// broker's id, or empty when there is none. Lookup values are the provider's
// own objects. Objects without an id, duplicate ids and parentless virtual
// hosts are reported as ErrMalformedHierarchy.
func BuildEntries(structure hierarchy.Structure) (Result, error) {
	if structure == nil {
		return Result{}, fmt.Errorf("%w: structure is nil", ErrMalformedHierarchy)
	}

	brokers := structure.FindByType(hierarchy.TypeBroker)
	hosts := structure.FindByType(hierarchy.TypeVirtualHost)

	result := Result{
		Entries: make([]Entry, 0, len(brokers)+len(hosts)),
		Lookup:  make(map[string]*hierarchy.ManagementObject, len(brokers)+len(hosts)),
	}

	add := func(obj *hierarchy.ManagementObject, label string) error {
		if obj.ID == "" {
			return fmt.Errorf("%w: %s %q has no id", ErrMalformedHierarchy, obj.Type, obj.Name)
		}
		if _, dup := result.Lookup[obj.ID]; dup {
			return fmt.Errorf("%w: duplicate object id %q", ErrMalformedHierarchy, obj.ID)
		}
		result.Entries = append(result.Entries, Entry{ID: obj.ID, Label: label})
		result.Lookup[obj.ID] = obj
		return nil
	}

	for idx, broker := range brokers {
		if broker == nil {
			return Result{}, fmt.Errorf("%w: nil broker", ErrMalformedHierarchy)
		}
		if err := add(broker, broker.Name); err != nil {
			return Result{}, err
		}
		if idx == 0 {
			result.DefaultID = broker.ID
		}
	}

	for _, host := range hosts {
		if host == nil {
			return Result{}, fmt.Errorf("%w: nil virtual host", ErrMalformedHierarchy)
		}
		if host.Parent == nil {
			return Result{}, fmt.Errorf("%w: virtual host %q has no parent", ErrMalformedHierarchy, host.ID)
		}
		if err := add(host, VirtualHostLabel(host)); err != nil {
			return Result{}, err
		}
	}

	return result, nil
}

// VirtualHostLabel formats a virtual host as "VH:<parent name>/<name>". The
// caller guarantees host.Parent is set.
func VirtualHostLabel(host *hierarchy.ManagementObject) string {
	return VirtualHostPrefix + host.Parent.Name + "/" + host.Name
}

// Has reports whether id is a selectable target.
func (r Result) Has(id string) bool {
	_, ok := r.Lookup[id]
	return ok
}

// Object returns the live object selected by id.
func (r Result) Object(id string) (*hierarchy.ManagementObject, bool) {
	obj, ok := r.Lookup[id]
	return obj, ok
}

// Len reports the number of selectable targets.
func (r Result) Len() int {
	return len(r.Entries)
}

// IndexOf returns the position of id in Entries, or -1.
func (r Result) IndexOf(id string) int {
	for idx, entry := range r.Entries {
		if entry.ID == id {
			return idx
		}
	}
	return -1
}
