package surround

import "fmt"

// Sample is the element type of a [Block].
type Sample interface {
	~float32 | ~float64
}

// Block is a channel-major 5.1 sample buffer indexed by [Channel]. All six
// channel slices must have the same length.
type Block[T Sample] [NumChannels][]T

// NewBlock allocates a zeroed block with the given number of frames.
func NewBlock[T Sample](frames int) Block[T] {
	var b Block[T]
	for ch := range b {
		b[ch] = make([]T, frames)
	}
	return b
}

// Frames returns the block length in samples per channel.
func (b *Block[T]) Frames() int {
	return len(b[0])
}

// Validate returns an error if the channel slices differ in length.
func (b *Block[T]) Validate() error {
	n := len(b[0])
	for ch := 1; ch < NumChannels; ch++ {
		if len(b[ch]) != n {
			return fmt.Errorf("surround: channel %v has %d frames, want %d", Channel(ch), len(b[ch]), n)
		}
	}
	return nil
}

// Slice returns a view of frames [from, to) of every channel. No samples are
// copied.
func (b *Block[T]) Slice(from, to int) Block[T] {
	var out Block[T]
	for ch := range b {
		out[ch] = b[ch][from:to]
	}
	return out
}

// Clear sets every sample to zero.
func (b *Block[T]) Clear() {
	for ch := range b {
		clear(b[ch])
	}
}
