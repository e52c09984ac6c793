// Package filterlab estimates the impulse response of an unknown linear
// system from an input recording and the system's measured output.
//
// The package ties together the dense algebra in [linalg], the transforms in
// [spectral] and the recursive least squares estimator in [rls], and reads
// and writes its inputs and results through [wavio] and [report].
//
// # Features
//
//   - Recursive least squares and batch normal-equation solvers
//   - Per-channel estimation, optionally one goroutine per channel
//   - Frequency response of the estimated taps with any [spectral.Method]
//   - Causal convolution for verifying an estimate against its input
//   - Optional per-sample estimator trace for convergence diagnostics
//   - Biquad IIR sections (package iir) whose impulse responses feed the same
//     frequency response analysis
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// Estimate 64 taps from two sample series:
//
//	lab, err := filterlab.New(&filterlab.Config{
//	    SampleRate:     48000,
//	    Taps:           64,
//	    Regularization: rls.DefaultRegularization,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	taps, err := lab.Estimate(input, reference)
//
// Or run the whole analysis on two WAV files and save the results:
//
//	res, err := lab.AnalyzeFiles("sweep.wav", "recorded.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = lab.Save(res, "out", "room")
//
// Save writes room.csv (frequency, amplitude, argument and impulse series),
// room_logs.csv when tracing is enabled, and room_iconv.wav, the input
// convolved with the estimated taps.
//
// # Thread Safety
//
// A [Lab] holds only its configuration and is safe for concurrent use.
// Every call builds its own estimator state.
package filterlab
