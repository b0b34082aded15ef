// internal/identifier/doc.go

/*
Package identifier provides the structured representation of a content
identifier within the system, based on the canonical format
`namespace:name`.

Every piece of registrable content is addressed by exactly one
identifier, e.g. `base:stone` or `mymod:copper_ingot`. This package
enforces the identifier schema and centralizes all formatting, parsing
and validation logic.
*/
package identifier
