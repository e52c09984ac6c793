package filterlab

// Defaults used by DefaultConfig.
const (
	DefaultSampleRate = 48000
	DefaultTaps       = 64
)

// Channel and memory limits.
const (
	maxChannels     = 256
	bytesPerFloat64 = 8
)

// Output file naming used by Save.
const (
	csvExt         = ".csv"
	wavExt         = ".wav"
	traceSuffix    = "_logs"
	verifySuffix   = "_iconv"
	verifyBitDepth = 16
	verifyChannels = 1

	// verifyPeak keeps the normalized verification signal just below
	// 16-bit full scale.
	verifyPeak = 32767.0 / 32768.0
)

// Rows of the matrix returned by FrequencyResponse.
const (
	ResponseFrequency = iota
	ResponseAmplitude
	ResponseArgument
	ResponseImpulse
	responseRows
)
