// FILE: src/internal/core/property.go
package core

// PropertyDescriptor binds a configured output field name to the template
// that produces its value. Immutable after configuration.
type PropertyDescriptor struct {
	Name     string
	Template string
}

// PropertyList is an append-only ordered sequence of descriptors.
// Declaration order is significant: both collision resolution and output
// ordering depend on it.
type PropertyList struct {
	props []PropertyDescriptor
}

// NewPropertyList creates a list pre-sized for n descriptors.
func NewPropertyList(n int) *PropertyList {
	return &PropertyList{
		props: make([]PropertyDescriptor, 0, n),
	}
}

// Add appends a descriptor. Duplicate names are allowed; the renderer
// resolves them at render time.
func (pl *PropertyList) Add(name, template string) {
	pl.props = append(pl.props, PropertyDescriptor{
		Name:     name,
		Template: template,
	})
}

// All returns the descriptors in declaration order. The returned slice is
// shared; callers must not mutate it.
func (pl *PropertyList) All() []PropertyDescriptor {
	return pl.props
}

// Len returns the number of configured descriptors.
func (pl *PropertyList) Len() int {
	return len(pl.props)
}
