// Package wavio reads and writes PCM WAV files as linalg vectors.
//
// Samples are interleaved and normalized to [-1, 1) by dividing by
// 2^(bitDepth-1). Writing applies the inverse scale, rounds and clips to
// the integer range of the target bit depth, so a write followed by a read
// reproduces the input to within half a quantization step.
package wavio
