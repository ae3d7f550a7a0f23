// Package typesys defines the descriptor model shared by all layout
// operations.
//
// A TypeDescriptor is an immutable snapshot of one resolved type: its name,
// total byte size, a TypeCode discriminator, and its ordered member list.
// Descriptors are produced fresh per invocation by a Resolver and carry no
// reference back to the backend that built them, so the inspect package can
// run over descriptors from any source, including hand-built test fixtures.
//
// Field order is whatever the resolver reported. Consumers must not assume
// it is sorted by offset.
package typesys
