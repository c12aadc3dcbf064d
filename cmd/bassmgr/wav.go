package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-bassmgr/dsp/surround"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// pcm is a decoded interleaved 5.1 stream. data holds samples as stored in
// the file: unsigned for 8-bit streams, signed otherwise.
type pcm struct {
	sampleRate int
	bitDepth   int
	data       []int
}

func (p *pcm) frames() int { return len(p.data) / surround.NumChannels }

// fullScale returns the magnitude of the largest negative sample value.
func (p *pcm) fullScale() float64 {
	return float64(int64(1) << (p.bitDepth - 1))
}

// bias is the stored value of silence.
func (p *pcm) bias() int {
	if p.bitDepth == 8 {
		return 128
	}
	return 0
}

func readWAV(r io.ReadSeeker) (*pcm, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("wav: not a valid WAV file")
	}
	// Extensible headers are common for 5.1 and are taken as integer PCM.
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return nil, fmt.Errorf("wav: only integer PCM is supported, got format %d", dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: decode: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels != surround.NumChannels {
		n := 0
		if buf.Format != nil {
			n = buf.Format.NumChannels
		}
		return nil, fmt.Errorf("wav: need %d channels, got %d", surround.NumChannels, n)
	}

	depth := int(dec.SampleBitDepth())
	switch depth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("wav: unsupported bit depth %d", depth)
	}

	return &pcm{
		sampleRate: buf.Format.SampleRate,
		bitDepth:   depth,
		data:       buf.Data,
	}, nil
}

func readWAVFile(path string) (*pcm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readWAV(f)
}

func writeWAV(w io.WriteSeeker, p *pcm) error {
	enc := wav.NewEncoder(w, p.sampleRate, p.bitDepth, surround.NumChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: surround.NumChannels,
			SampleRate:  p.sampleRate,
		},
		Data:           p.data,
		SourceBitDepth: p.bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	return enc.Close()
}

func writeWAVFile(path string, p *pcm) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeWAV(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// deinterleave converts frames [from, from+n) of p into blk, scaled to
// [-1, 1).
func (p *pcm) deinterleave(blk surround.Block[float32], from int) {
	scale := 1 / p.fullScale()
	bias := p.bias()
	base := from * surround.NumChannels
	for i := range blk[0] {
		frame := p.data[base+i*surround.NumChannels:]
		for ch := range blk {
			blk[ch][i] = float32(float64(frame[ch]-bias) * scale)
		}
	}
}

// interleave writes blk back into frames starting at from, rounding and
// clipping to the stream's bit depth. It returns the number of clipped
// samples.
func (p *pcm) interleave(blk surround.Block[float32], from int) int {
	full := p.fullScale()
	hi, lo := full-1, -full
	bias := p.bias()
	clipped := 0

	base := from * surround.NumChannels
	for i := range blk[0] {
		frame := p.data[base+i*surround.NumChannels:]
		for ch := range blk {
			v := math.Round(float64(blk[ch][i]) * full)
			if v > hi {
				v = hi
				clipped++
			} else if v < lo {
				v = lo
				clipped++
			}
			frame[ch] = int(v) + bias
		}
	}
	return clipped
}
