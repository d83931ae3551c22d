package hierarchy

// Tree is an in-memory Structure over one or more root objects. Objects are
// indexed depth-first in insertion order when the tree is built; later edits
// to the objects are not re-indexed.
type Tree struct {
	roots  []*ManagementObject
	byType map[string][]*ManagementObject
	byID   map[string]*ManagementObject
}

var _ Structure = (*Tree)(nil)

// NewTree indexes the supplied roots and their descendants.
func NewTree(roots ...*ManagementObject) *Tree {
	t := &Tree{
		byType: make(map[string][]*ManagementObject),
		byID:   make(map[string]*ManagementObject),
	}
	for _, root := range roots {
		if root == nil {
			continue
		}
		t.roots = append(t.roots, root)
		t.index(root)
	}
	return t
}

func (t *Tree) index(obj *ManagementObject) {
	t.byType[obj.Type] = append(t.byType[obj.Type], obj)
	if obj.ID != "" {
		t.byID[obj.ID] = obj
	}
	for _, child := range obj.Children {
		if child == nil {
			continue
		}
		t.index(child)
	}
}

// FindByType implements Structure.
func (t *Tree) FindByType(typeName string) []*ManagementObject {
	if t == nil {
		return nil
	}
	found := t.byType[typeName]
	if len(found) == 0 {
		return nil
	}
	return append([]*ManagementObject(nil), found...)
}

// FindByID returns the object registered under id.
func (t *Tree) FindByID(id string) (*ManagementObject, bool) {
	if t == nil {
		return nil, false
	}
	obj, ok := t.byID[id]
	return obj, ok
}

// Roots returns the top-level objects.
func (t *Tree) Roots() []*ManagementObject {
	if t == nil {
		return nil
	}
	return append([]*ManagementObject(nil), t.roots...)
}

// Len reports the number of indexed objects.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, objs := range t.byType {
		n += len(objs)
	}
	return n
}
