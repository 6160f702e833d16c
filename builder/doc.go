// Package builder generates the random graphs that graph-BFS trials run on.
//
// It follows a “functional-options” composition style: every topology is a
// Constructor closure applied by BuildGraph to a fresh core.Graph, and every
// knob lives in an immutable builderConfig resolved from BuilderOption values.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:      WithSeed, WithRand, WithIDScheme, WithPrefixedIDs, WithMaxAttempts.
//     – builderConfig:      holds RNG, ID scheme and the rejection budget.
//   - Constructors:
//     – RandomSparse(n,p):       Erdős–Rényi G(n,p), possibly disconnected.
//     – RandomTree(n):           random recursive spanning tree.
//     – ConnectedSparse(n,p):    spanning tree + independent extras (strategy i).
//     – RejectionConnected(n,p): G(n,p) redrawn until connected, bounded (strategy ii).
//   - GenerateConnected(n,p,strategy,...): one-call entry used by trials.
//   - IsConnected(g): BFS reachability check.
//
// Guarantees:
//
//   - Connected constructors never return a disconnected graph; the rejection
//     strategy fails with ErrGraphGenerationTimeout once its budget is spent.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors wrapped with the constructor name.
//   - Same seed and constructor order ⇒ identical graphs.
package builder
