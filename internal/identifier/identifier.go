// internal/identifier/identifier.go
package identifier

import (
	"fmt"
	"strings"
)

// Separator joins the namespace and name parts of a canonical identifier.
const Separator = ":"

// Identifier is the structured form of a `namespace:name` content key.
type Identifier struct {
	Namespace string
	Name      string
}

// New builds an Identifier from its two parts without validating them.
func New(namespace, name string) Identifier {
	return Identifier{Namespace: namespace, Name: name}
}

// Namespaced is the minimal capability an item must expose for its
// identifier to be derived. It is satisfied by item.Item and by any
// caller-defined item type.
type Namespaced interface {
	Namespace() string
	Name() string
}

// FromItem derives the canonical identifier of an item.
func FromItem(v Namespaced) Identifier {
	return Identifier{Namespace: v.Namespace(), Name: v.Name()}
}

// String serializes the Identifier into its canonical `namespace:name`
// representation.
func (id Identifier) String() string {
	return id.Namespace + Separator + id.Name
}

// Validate reports whether both parts of the identifier carry content.
// A part that is empty or consists solely of whitespace is rejected;
// the registry cannot repair a blank identifier, only refuse it.
func (id Identifier) Validate() error {
	if strings.TrimSpace(id.Namespace) == "" {
		return fmt.Errorf("identifier %q has a blank namespace", id.String())
	}
	if strings.TrimSpace(id.Name) == "" {
		return fmt.Errorf("identifier %q has a blank name", id.String())
	}
	return nil
}

// Equal checks two identifiers for exact equality.
func (id Identifier) Equal(other Identifier) bool {
	return id.Namespace == other.Namespace && id.Name == other.Name
}
