// Package domain defines the core business entities for linesplit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceDocument: The decoded lines of a file being split
//   - PartSpec: A half-open line range assigned to one part
//   - OutputFile: A part's destination and the lines written to it
//   - SplitPlan / SplitResult: What a split will do and what it did
//   - SplitRun: A split recorded in history
//
// Partition, ParsePartCount and PartPath hold the pure splitting rules so
// that every driving adapter computes ranges and file names the same way.
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
