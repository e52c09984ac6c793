package wavio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-audio-filterlab/linalg"
)

// Audio is a decoded PCM stream.
type Audio struct {
	// Samples holds interleaved samples normalized to [-1, 1).
	Samples *linalg.Vector

	SampleRate int
	Channels   int
	BitDepth   int
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if a.Channels == 0 {
		return 0
	}
	return a.Samples.Len() / a.Channels
}

// Channel returns a copy of one de-interleaved channel.
func (a *Audio) Channel(ch int) (*linalg.Vector, error) {
	if ch < 0 || ch >= a.Channels {
		return nil, fmt.Errorf("%w: channel %d of %d", linalg.ErrOutOfRange, ch, a.Channels)
	}
	frames := a.Frames()
	out := linalg.NewVector(frames)
	for i := range frames {
		out.Set(i, a.Samples.At(i*a.Channels+ch))
	}
	return out, nil
}

// Deinterleave returns a Channels×Frames matrix with one channel per row.
// An empty stream yields a null matrix.
func (a *Audio) Deinterleave() *linalg.Matrix {
	frames := a.Frames()
	if frames == 0 {
		return linalg.NewMatrix(0, 0)
	}
	m := linalg.NewMatrix(a.Channels, frames)
	for i := range frames {
		for ch := range a.Channels {
			m.Set(ch, i, a.Samples.At(i*a.Channels+ch))
		}
	}
	return m
}

// Interleave flattens a channels×frames matrix into one interleaved vector.
func Interleave(m *linalg.Matrix) *linalg.Vector {
	channels, frames := m.Dims()
	out := linalg.NewVector(channels * frames)
	for i := range frames {
		for ch := range channels {
			out.Set(i*channels+ch, m.At(ch, i))
		}
	}
	return out
}

// Read decodes the WAV file at path.
func Read(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	defer func() { _ = f.Close() }()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Decode reads a complete PCM WAV stream.
func Decode(r io.ReadSeeker) (*Audio, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: unreadable header or empty data", ErrInvalidFile)
	}
	if decoder.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: audio format %d is not integer PCM", ErrInvalidFormat, decoder.WavAudioFormat)
	}
	bitDepth := int(decoder.BitDepth)
	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	samples := linalg.NewVector(len(buf.Data))
	for i, v := range buf.Data {
		if bitDepth == bitsPerSample8 {
			v -= unsignedOffset8
		}
		samples.Set(i, float64(v)/scale)
	}

	format := decoder.Format()
	return &Audio{
		Samples:    samples,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   bitDepth,
	}, nil
}

// Write encodes interleaved samples as PCM into a new file at path.
func Write(path string, samples linalg.Reader, sampleRate, channels, bitDepth int) error {
	if err := checkOutput(samples, sampleRate, channels, bitDepth); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if err := Encode(f, samples, sampleRate, channels, bitDepth); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Encode writes interleaved samples as a PCM WAV stream. Samples outside
// [-1, 1) are clipped.
func Encode(w io.WriteSeeker, samples linalg.Reader, sampleRate, channels, bitDepth int) error {
	if err := checkOutput(samples, sampleRate, channels, bitDepth); err != nil {
		return err
	}
	scale, _ := fullScale(bitDepth)

	data := make([]int, samples.Len())
	for i := range data {
		v := int(clip(math.Round(samples.At(i)*scale), -scale, scale-1))
		if bitDepth == bitsPerSample8 {
			v += unsignedOffset8
		}
		data[i] = v
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	encoder := wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM)
	if err := encoder.Write(buf); err != nil {
		_ = encoder.Close()
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return nil
}

func checkOutput(samples linalg.Reader, sampleRate, channels, bitDepth int) error {
	if sampleRate <= 0 || channels <= 0 {
		return fmt.Errorf("%w: sample rate %d, channels %d", ErrInvalidFormat, sampleRate, channels)
	}
	if samples.Len()%channels != 0 {
		return fmt.Errorf("%w: %d samples do not divide into %d channels",
			ErrInvalidFormat, samples.Len(), channels)
	}
	if _, err := fullScale(bitDepth); err != nil {
		return err
	}
	return nil
}

// fullScale returns 2^(bitDepth-1) for the supported depths.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample8, bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return math.Ldexp(1, bitDepth-1), nil
	default:
		return 0, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidFormat, bitDepth)
	}
}

func clip(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
