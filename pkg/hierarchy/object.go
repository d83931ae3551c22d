package hierarchy

// Object types understood by the management model.
const (
	TypeBroker          = "broker"
	TypeVirtualHostNode = "virtualhostnode"
	TypeVirtualHost     = "virtualhost"
)

// ManagementObject is a node of the management hierarchy. Parent and Children
// are non-owning links; callers compare objects by pointer identity.
type ManagementObject struct {
	ID       string              `json:"id" yaml:"id"`
	Type     string              `json:"type" yaml:"type"`
	Name     string              `json:"name" yaml:"name"`
	Parent   *ManagementObject   `json:"-" yaml:"-"`
	Children []*ManagementObject `json:"-" yaml:"-"`
}

// Structure is the object-structure provider contract. FindByType returns
// every object of the given type in the provider's own order.
type Structure interface {
	FindByType(typeName string) []*ManagementObject
}

// AddChild links child under o and returns child for chaining.
func (o *ManagementObject) AddChild(child *ManagementObject) *ManagementObject {
	if o == nil || child == nil {
		return child
	}
	child.Parent = o
	o.Children = append(o.Children, child)
	return child
}

// Path returns the names from the root down to o joined by "/".
func (o *ManagementObject) Path() string {
	if o == nil {
		return ""
	}
	if o.Parent == nil {
		return o.Name
	}
	return o.Parent.Path() + "/" + o.Name
}
