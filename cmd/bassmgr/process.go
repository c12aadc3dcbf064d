package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/cwbudde/algo-bassmgr/dsp/bass"
	"github.com/cwbudde/algo-bassmgr/dsp/core"
	"github.com/cwbudde/algo-bassmgr/dsp/surround"
)

func processFile(ctx context.Context, e *bass.Engine, opts options) error {
	in, err := readWAVFile(opts.in)
	if err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{
		"file":        opts.in,
		"sample_rate": in.sampleRate,
		"bit_depth":   in.bitDepth,
		"frames":      in.frames(),
	})
	log.Info("input loaded")

	if err := e.Prepare(float64(in.sampleRate), opts.block); err != nil {
		return err
	}
	p := e.Parameters()
	log.WithFields(logrus.Fields{
		"crossover_hz":  p.CrossoverHz,
		"lfe_cutoff_hz": p.LFECutoffHz,
		"lfe_boost":     p.LFEBoost,
		"block":         opts.block,
	}).Debug("engine prepared")

	var display *meterLine
	if fd := int(os.Stderr.Fd()); term.IsTerminal(fd) {
		display = newMeterLine(os.Stderr, fd)
	}

	clipped, err := runEngine(ctx, e, in, opts.block, display)
	if display != nil {
		display.finish()
	}
	if err != nil {
		return err
	}

	if err := writeWAVFile(opts.out, in); err != nil {
		return err
	}

	fields := logrus.Fields{"file": opts.out, "clipped": clipped}
	for ch := surround.Channel(0); ch < surround.NumChannels; ch++ {
		fields["out_"+strings.ToLower(ch.String())+"_db"] = fmt.Sprintf("%.1f", core.LinearToDB(float64(e.Level(false, 0, int(ch)))))
	}
	logrus.WithFields(fields).Info("output written")
	return nil
}

// runEngine processes p in place on one goroutine while another ticks the
// meter. It returns the number of samples clipped on conversion back to
// integers.
func runEngine(ctx context.Context, e *bass.Engine, p *pcm, block int, display *meterLine) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	meterCtx, stopMeter := context.WithCancel(gctx)
	defer stopMeter()

	clipped := 0
	g.Go(func() error {
		defer stopMeter()

		blk := surround.NewBlock[float32](block)
		total := p.frames()
		for from := 0; from < total; from += block {
			if err := gctx.Err(); err != nil {
				return err
			}
			n := min(block, total-from)
			chunk := blk.Slice(0, n)
			p.deinterleave(chunk, from)
			e.Process(chunk)
			clipped += p.interleave(chunk, from)
		}
		return nil
	})

	g.Go(func() error {
		var onTick func()
		if display != nil {
			onTick = func() { display.draw(e.Levels(false)) }
		}
		err := e.RunMeter(meterCtx, onTick)
		if errors.Is(err, context.Canceled) && gctx.Err() == nil {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return clipped, err
	}
	// One final tick so the logged levels include the last blocks.
	e.Tick()
	return clipped, nil
}

// meterLine renders output levels on a single terminal line.
type meterLine struct {
	w  io.Writer
	fd int
}

func newMeterLine(w io.Writer, fd int) *meterLine {
	return &meterLine{w: w, fd: fd}
}

func (m *meterLine) draw(levels [surround.NumChannels]float32) {
	var b strings.Builder
	b.WriteString("\r")
	for ch, v := range levels {
		db := core.LinearToDB(float64(v))
		if db < -99 {
			db = -99
		}
		fmt.Fprintf(&b, "%-3s %6.1f  ", surround.Channel(ch), db)
	}

	line := b.String()
	if width, _, err := term.GetSize(m.fd); err == nil && width > 1 && len(line) > width {
		line = line[:width]
	}
	fmt.Fprint(m.w, line)
}

func (m *meterLine) finish() {
	fmt.Fprintln(m.w)
}
