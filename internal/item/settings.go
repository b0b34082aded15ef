// internal/item/settings.go
package item

// MaxStackDefault is the stack size items use unless their settings say
// otherwise.
const MaxStackDefault = 64

// Settings holds the gameplay attributes of an item. These are owned by
// the caller that constructs the item; the registry never interprets
// them.
type Settings struct {
	// MaxStack is how many of this item fit in a single inventory slot.
	MaxStack int

	// Flammable marks the item as destructible by fire.
	Flammable bool
}

// DefaultSettings returns the baseline settings for a new item.
func DefaultSettings() Settings {
	return Settings{MaxStack: MaxStackDefault}
}
