// Package app wires the application together: configuration, logging,
// the item registry, the compiled-in content packs and the manifest
// loader. An App owns one isolated registry instance; nothing in the
// process is global.
package app
