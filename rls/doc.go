// Package rls estimates FIR filter taps with the recursive least squares
// algorithm.
//
// An Estimator is fed pairs of input sample x[n] and desired output d[n] of
// an unknown system and adapts its weight vector h so that
//
//	d[n] ≈ h[0]·x[n] + h[1]·x[n-1] + ... + h[M-1]·x[n-M+1]
//
// Weights are therefore reported in natural tap order. For a noiseless FIR
// system driven by white noise the weights converge to the true taps within
// a few multiples of M samples.
//
// SolveNormal computes the same least-squares fit in one batch through the
// normal equations.
package rls
