// Package testsupport provides hierarchy and catalog fixtures shared by the
// package tests.
package testsupport

import (
	"fmt"

	"github.com/goliatone/go-querydialog/pkg/catalog"
	"github.com/goliatone/go-querydialog/pkg/hierarchy"
)

// SampleHierarchy is the single broker "Main" (id B1) with one virtual host
// "default" (id V1) directly beneath it.
type SampleHierarchy struct {
	Tree        *hierarchy.Tree
	Broker      *hierarchy.ManagementObject
	VirtualHost *hierarchy.ManagementObject
}

// Sample builds a fresh SampleHierarchy.
func Sample() SampleHierarchy {
	broker := &hierarchy.ManagementObject{ID: "B1", Type: hierarchy.TypeBroker, Name: "Main"}
	host := broker.AddChild(&hierarchy.ManagementObject{ID: "V1", Type: hierarchy.TypeVirtualHost, Name: "default"})
	return SampleHierarchy{
		Tree:        hierarchy.NewTree(broker),
		Broker:      broker,
		VirtualHost: host,
	}
}

// GeneratedTree builds brokers each owning nodes virtual host nodes with
// hosts virtual hosts apiece. Ids are deterministic ("b0", "b0-n1",
// "b0-n1-v2").
func GeneratedTree(brokers, nodes, hosts int) *hierarchy.Tree {
	roots := make([]*hierarchy.ManagementObject, 0, brokers)
	for b := 0; b < brokers; b++ {
		broker := &hierarchy.ManagementObject{
			ID:   fmt.Sprintf("b%d", b),
			Type: hierarchy.TypeBroker,
			Name: fmt.Sprintf("broker-%d", b),
		}
		for n := 0; n < nodes; n++ {
			node := broker.AddChild(&hierarchy.ManagementObject{
				ID:   fmt.Sprintf("%s-n%d", broker.ID, n),
				Type: hierarchy.TypeVirtualHostNode,
				Name: fmt.Sprintf("node-%d", n),
			})
			for h := 0; h < hosts; h++ {
				node.AddChild(&hierarchy.ManagementObject{
					ID:   fmt.Sprintf("%s-v%d", node.ID, h),
					Type: hierarchy.TypeVirtualHost,
					Name: fmt.Sprintf("vh-%d", h),
				})
			}
		}
		roots = append(roots, broker)
	}
	return hierarchy.NewTree(roots...)
}

// StaticStructure serves fixed object lists keyed by type. Use it to model
// providers that break the hierarchy contract.
type StaticStructure map[string][]*hierarchy.ManagementObject

// FindByType implements hierarchy.Structure.
func (s StaticStructure) FindByType(typeName string) []*hierarchy.ManagementObject {
	return s[typeName]
}

// Catalog returns a catalog registering each category with a single
// "standard" type.
func Catalog(categories ...string) *catalog.Catalog {
	cat := catalog.New()
	for _, name := range categories {
		cat.Register(catalog.Descriptor{
			Category: name,
			Types:    map[string]catalog.TypeDescriptor{"standard": {}},
		})
	}
	return cat
}
