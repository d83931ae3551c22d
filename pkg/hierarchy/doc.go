// Package hierarchy models the management object tree a dialog scopes
// against: brokers, the virtual host nodes beneath them and their virtual
// hosts. Consumers depend on the Structure contract; Tree is the in-memory
// implementation and Parse builds one from a structure document.
package hierarchy
