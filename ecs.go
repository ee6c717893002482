// Package inkan implements a sparse-set, signature-routed Entity Component
// System for Go.
//
// Features:
// - Dense, hole-free component pools with O(1) add/remove/get via swap-remove.
// - Fixed-width 256-bit signatures routing entities to interested systems.
// - FIFO entity handle recycling over a fixed capacity chosen at startup.
// - Generic typed pool handles obtained once at registration; no hashing
//   and no type assertions on the hot path.
// - Explicit error values for every capacity, registration and lookup
//   failure; a failed operation never mutates world state.
// - Single-threaded by design: every operation runs to completion.
package inkan

// MaxComponentTypes defines the maximum number of unique component types that
// can be registered in a World. One signature bit per type, fixed at 256.
const MaxComponentTypes = 256

// Entity is a bounded integer handle identifying a logical object. It carries
// no data itself; components associated with it live in the pools.
type Entity uint32

// ComponentID is the dense small-integer identity of a registered component
// type, usable directly as a signature bit position.
type ComponentID uint8
