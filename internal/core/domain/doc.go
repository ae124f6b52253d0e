// Package domain defines the core types for dsctl.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Value: The dynamic value every command argument and result is
//   - Args: The ordered argument store of one invocation
//   - Session: The ambient connection context handed to commands
//   - Invocation: A recorded command call
//
// Value is a closed set of variants (Nil, String, Integer, Number, Boolean,
// Bytes). Parse infers a variant from untyped text. From and To move values
// across the boundary to native Go types; To is strict and never widens
// Integer to Number or the reverse.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
