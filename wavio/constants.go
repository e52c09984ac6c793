package wavio

// Supported PCM bit depths.
const (
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

const (
	// formatPCM is the WAV audio format tag for integer PCM.
	formatPCM = 1

	// unsignedOffset8 is the zero level of unsigned 8-bit PCM.
	unsignedOffset8 = 128
)
