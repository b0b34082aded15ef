// Package registry provides the central store for the content system.
//
// The Registry maps canonical string identifiers ("namespace:name") to
// the item instances mods registered under them. It is the single source
// of truth for registered content: compiled-in content packs and HCL
// manifests both funnel into it during the startup registration phase,
// and every later lookup resolves against it.
//
// When two registrations compute the same identifier, the registry
// resolves the collision according to its ConflictPolicy: keep the
// existing item, overwrite it with the new one, or remove both. The
// registry itself performs no logging and emits no events; callers that
// care about collisions observe them through the returned item.
//
// Registrations are linearizable: a mutex guards every mutation, and
// listings return consistent snapshots in registration order.
package registry
