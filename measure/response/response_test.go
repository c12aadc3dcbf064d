package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-bassmgr/dsp/bass"
	"github.com/cwbudde/algo-bassmgr/dsp/surround"
)

const (
	testRate = 48000.0
	testFFT  = 32768
)

func newEngine(t *testing.T) *bass.Engine {
	t.Helper()

	e, err := bass.New(bass.WithParameters(bass.Parameters{CrossoverHz: 80, LFECutoffHz: 120, LFEBoost: true}))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Prepare(testRate, 1024); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestImpulseResponse_NotPrepared(t *testing.T) {
	e, _ := bass.New()
	if _, err := ImpulseResponse(e, surround.L, surround.L, 16); !errors.Is(err, ErrNotPrepared) {
		t.Fatalf("err = %v, want ErrNotPrepared", err)
	}
	if _, err := Table(e, []float64{100}); !errors.Is(err, ErrNotPrepared) {
		t.Fatalf("Table err = %v, want ErrNotPrepared", err)
	}
}

func TestImpulseResponse_InvalidArgs(t *testing.T) {
	e := newEngine(t)
	if _, err := ImpulseResponse(e, surround.Channel(9), surround.L, 16); err == nil {
		t.Fatal("invalid channel: expected error")
	}
	if _, err := ImpulseResponse(e, surround.L, surround.L, 0); err == nil {
		t.Fatal("zero length: expected error")
	}
}

func TestImpulseResponse_MatchesAnalytic(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		name    string
		in, out surround.Channel
		bin     int
		want    func(f float64) complex128
	}{
		{"C to C", surround.C, surround.C, 683, func(f float64) complex128 { return e.Bank().Response(f, testRate) }},
		{"C to LFE", surround.C, surround.LFE, 21, func(f float64) complex128 { return e.LowpassSum().Response(f, testRate) }},
		{"LFE to LFE", surround.LFE, surround.LFE, 41, func(f float64) complex128 { return e.LFE().Response(f, testRate) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ir, err := ImpulseResponse(e, tt.in, tt.out, testFFT)
			if err != nil {
				t.Fatal(err)
			}
			mag, err := Spectrum(ir, testFFT)
			if err != nil {
				t.Fatal(err)
			}

			f := BinFrequency(tt.bin, testFFT, testRate)
			got := MagnitudeDBAt(mag, f, testRate)
			want := 20 * math.Log10(cmplx.Abs(tt.want(f)))
			if math.Abs(got-want) > 0.05 {
				t.Fatalf("at %.1f Hz: measured %.3f dB, analytic %.3f dB", f, got, want)
			}
		})
	}
}

func TestImpulseResponse_NoCrossTalk(t *testing.T) {
	e := newEngine(t)
	ir, err := ImpulseResponse(e, surround.L, surround.R, 4096)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range ir {
		if v != 0 {
			t.Fatalf("L -> R sample %d = %v, want 0", i, v)
		}
	}
}

func TestSpectrum_Impulse(t *testing.T) {
	ir := []float64{1}
	mag, err := Spectrum(ir, 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(mag) != 33 {
		t.Fatalf("len = %d, want 33", len(mag))
	}
	for k, v := range mag {
		if math.Abs(v-1) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1", k, v)
		}
	}

	if _, err := Spectrum(ir, 1); err == nil {
		t.Fatal("FFT size 1: expected error")
	}
}

func TestCrossoverSum_FlatAwayFromCutoff(t *testing.T) {
	e := newEngine(t)
	for _, f := range []float64{10, 20, 320, 1000, 10000} {
		h := CrossoverSum(e.Bank(), e.LowpassSum(), f, testRate)
		if d := 20 * math.Log10(cmplx.Abs(h)); math.Abs(d) > 1 {
			t.Fatalf("sum at %v Hz = %.3f dB", f, d)
		}
	}
}

func TestTable(t *testing.T) {
	e := newEngine(t)
	freqs := LogFrequencies(20, 20000, 31)
	if len(freqs) != 31 || math.Abs(freqs[0]-20) > 1e-9 || math.Abs(freqs[30]-20000) > 1e-6 {
		t.Fatalf("LogFrequencies = %v", freqs)
	}

	rows, err := Table(e, freqs)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(freqs) {
		t.Fatalf("rows = %d, want %d", len(rows), len(freqs))
	}

	last := rows[len(rows)-1]
	if math.Abs(last.Main) > 0.01 || last.Redirected > -60 {
		t.Fatalf("20 kHz row = %+v", last)
	}
	first := rows[0]
	if first.Main > -60 || math.Abs(first.LFE-10) > 0.1 {
		t.Fatalf("20 Hz row = %+v", first)
	}
}

func TestLogFrequencies_Invalid(t *testing.T) {
	if LogFrequencies(0, 100, 4) != nil || LogFrequencies(100, 10, 4) != nil || LogFrequencies(10, 100, 0) != nil {
		t.Fatal("expected nil for invalid ranges")
	}
	if got := LogFrequencies(50, 100, 1); len(got) != 1 || got[0] != 50 {
		t.Fatalf("LogFrequencies(n=1) = %v", got)
	}
}
