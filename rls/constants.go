package rls

// Estimator defaults.
const (
	// DefaultRegularization is the constant c of the initial inverse
	// correlation matrix P = I/c. Small values express low confidence in
	// the zero initial weights.
	DefaultRegularization = 0.001

	// ProgressInterval is the number of samples between debug progress
	// entries when a logger is attached.
	ProgressInterval = 4096

	// percentScale converts a fraction to a percentage.
	percentScale = 100
)

// Trace rows, in the order returned by Estimator.Trace.
const (
	// TraceError is the a-posteriori error d - uᵀh after the weight update.
	TraceError = iota
	// TraceEta is the a-priori error d - uᵀh before the weight update.
	TraceEta
	// TraceCost is the running sum of error·eta.
	TraceCost
	// TraceGainNorm is the Euclidean norm of the gain vector k.
	TraceGainNorm
	// TraceInputNorm is the Euclidean norm of the input history u.
	TraceInputNorm
	// TraceEnergy is the running sum of d².
	TraceEnergy

	traceRows
)
