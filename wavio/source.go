package wavio

import "github.com/tphakala/go-audio-filterlab/linalg"

// Source supplies decoded sample streams.
type Source interface {
	Read(path string) (*Audio, error)
}

// Sink stores sample streams.
type Sink interface {
	Write(path string, a *Audio) error
}

// FileIO is the file-system backed Source and Sink.
type FileIO struct{}

var (
	_ Source = FileIO{}
	_ Sink   = FileIO{}
)

// Read decodes the WAV file at path.
func (FileIO) Read(path string) (*Audio, error) { return Read(path) }

// Write encodes a as a WAV file at path.
func (FileIO) Write(path string, a *Audio) error {
	return Write(path, a.Samples, a.SampleRate, a.Channels, a.BitDepth)
}

// NewAudio wraps interleaved samples with their format.
func NewAudio(samples *linalg.Vector, sampleRate, channels, bitDepth int) *Audio {
	return &Audio{Samples: samples, SampleRate: sampleRate, Channels: channels, BitDepth: bitDepth}
}
