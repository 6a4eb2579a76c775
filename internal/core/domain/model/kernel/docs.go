// Package kernel provides the domain primitives shared by the fulfillment model.
//
// The package includes:
//   - Money: a non-negative decimal amount rounded to cents
//   - Role: the closed enumeration of actor roles, and RoleSet allow-lists built from it
//   - Actor: the identity and role of the caller of a state-machine operation
//
// All types are immutable values and safe for concurrent use.
package kernel
