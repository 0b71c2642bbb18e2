// FILE: src/internal/render/resolver.go
package render

import (
	"loglayout/src/internal/core"
)

// resolveKeys assigns each property a final output key, in declaration
// order. The used set is seeded with the four standard field names; the
// first occurrence of a name keeps its bare form, any later occurrence
// (or a name equal to a standard field) gets the collision prefix.
// Single pass, no re-prefixing: a prefixed key that itself collides is
// accepted as a duplicate.
func resolveKeys(props []core.PropertyDescriptor) []string {
	used := map[string]struct{}{
		core.FieldTimeStamp:  {},
		core.FieldLevel:      {},
		core.FieldLoggerName: {},
		core.FieldMessage:    {},
	}

	keys := make([]string, len(props))
	for i, p := range props {
		key := p.Name
		if _, taken := used[key]; taken {
			key = core.CollisionPrefix + p.Name
		}
		used[key] = struct{}{}
		keys[i] = key
	}
	return keys
}
