// internal/identifier/parser.go
package identifier

import (
	"fmt"
	"strings"
)

// Parse creates an Identifier by parsing its canonical string
// representation. The raw value must contain exactly one separator with
// non-blank text on both sides.
func Parse(rawID string) (Identifier, error) {
	if strings.TrimSpace(rawID) == "" {
		return Identifier{}, fmt.Errorf("identifier cannot be empty")
	}

	namespace, name, found := strings.Cut(rawID, Separator)
	if !found {
		return Identifier{}, fmt.Errorf("identifier %q is missing the %q separator", rawID, Separator)
	}
	if strings.Contains(name, Separator) {
		return Identifier{}, fmt.Errorf("identifier %q contains more than one %q separator", rawID, Separator)
	}

	id := Identifier{Namespace: namespace, Name: name}
	if err := id.Validate(); err != nil {
		return Identifier{}, err
	}
	return id, nil
}
