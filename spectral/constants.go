package spectral

// Spectrum layout.
const (
	// rowReal and rowImag index the two rows of a complex spectrum.
	rowReal = 0
	rowImag = 1

	// rowMagnitude and rowAngle index the two rows of a polar spectrum.
	rowMagnitude = 0
	rowAngle     = 1

	// spectrumRows is the row count of every spectrum matrix.
	spectrumRows = 2
)

// powerDecibelScale converts a power ratio to decibels (10·log10), which
// equals 20·log10 of the magnitude.
const powerDecibelScale = 10
