// Package manifest loads declarative content files into the registry.
//
// A content manifest is an .hcl file containing `item` blocks (see
// internal/schema). The loader discovers manifests under the configured
// content paths, decodes them, and registers the resulting item
// definitions; identifier collisions between manifests are resolved by
// the registry's conflict policy.
package manifest
