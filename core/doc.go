// Package core provides the fundamental interfaces that define entities
// in the battle engine without imposing any combat-specific attributes.
//
// Purpose:
// This package establishes the base contract all battle entities fulfill,
// providing identity and type information only. It is the foundation the
// other packages build on.
//
// Scope:
//   - Entity interface: basic identity contract (ID, Type)
//   - No combat logic, stats, or behaviors
//   - No persistence or storage concerns
//
// Integration:
// This package is imported by the creature, party and turn packages. It has
// no dependencies on other engine packages, keeping it at the base of the
// dependency hierarchy.
package core
