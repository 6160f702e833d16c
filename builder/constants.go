// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Method name constants, used to prefix errors with the constructor name.
const (
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomTree is the canonical name for the RandomTree constructor.
	MethodRandomTree = "RandomTree"
	// MethodConnectedSparse is the canonical name for the ConnectedSparse constructor.
	MethodConnectedSparse = "ConnectedSparse"
	// MethodRejectionConnected is the canonical name for the RejectionConnected constructor.
	MethodRejectionConnected = "RejectionConnected"
)

// MinVertices is the smallest vertex count any random constructor accepts.
const MinVertices = 1

// Probability bounds for Bernoulli edge trials.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// DefaultMaxAttempts bounds RejectionConnected resampling when no
// WithMaxAttempts option is given.
const DefaultMaxAttempts = 1000
