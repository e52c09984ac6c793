// Package iir implements second-order (biquad) IIR filters designed by the
// bilinear transform with frequency prewarping.
//
// Design returns normalized coefficients for a low-pass, high-pass,
// band-pass or band-stop section. A Biquad holds those coefficients together
// with the last two inputs and outputs and filters one sample at a time in
// Direct Form I:
//
//	y[n] = B0·x[n] + B1·x[n-1] + B2·x[n-2] - A1·y[n-1] - A2·y[n-2]
//
// The impulse response of a Biquad can be passed to the FIR analysis
// helpers of the parent package to measure its frequency response.
package iir
