package crossover

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/design"
	"github.com/cwbudde/algo-bassmgr/dsp/surround"
	"github.com/cwbudde/algo-bassmgr/internal/testutil"
)

func newTestPair(t *testing.T, hz, sr float64) (*Bank, *LowpassSum) {
	t.Helper()

	bank, err := NewBank(8, 2)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	if err := bank.SetCutoff(hz, sr); err != nil {
		t.Fatalf("Bank.SetCutoff: %v", err)
	}

	sum, err := NewLowpassSum(4)
	if err != nil {
		t.Fatalf("NewLowpassSum: %v", err)
	}
	if err := sum.SetCutoff(hz, sr); err != nil {
		t.Fatalf("LowpassSum.SetCutoff: %v", err)
	}
	return bank, sum
}

func peak(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func TestNewBank_InvalidParameters(t *testing.T) {
	tests := []struct {
		name       string
		stages     int
		stageOrder int
	}{
		{"zero stages", 0, 2},
		{"negative stages", -1, 2},
		{"order zero", 8, 0},
		{"order three", 8, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBank(tt.stages, tt.stageOrder); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewLowpassSum_InvalidOrder(t *testing.T) {
	for _, order := range []int{-4, 0, 1, 3} {
		if _, err := NewLowpassSum(order); err == nil {
			t.Fatalf("NewLowpassSum(%d): expected error", order)
		}
	}
}

func TestBank_SharedCoefficients(t *testing.T) {
	bank, _ := newTestPair(t, 80, 48000)

	want := bank.Coefficients()
	for _, ch := range surround.Mains {
		c := bank.Cascade(ch)
		if c == nil {
			t.Fatalf("Cascade(%v) = nil", ch)
		}
		if c.NumStages() != 8 {
			t.Fatalf("Cascade(%v).NumStages() = %d, want 8", ch, c.NumStages())
		}
		if c.Coefficients() != want {
			t.Fatalf("Cascade(%v) coefficients = %+v, want %+v", ch, c.Coefficients(), want)
		}
	}
	if bank.Cascade(surround.LFE) != nil {
		t.Fatal("Cascade(LFE) should be nil")
	}
}

func TestBank_SetCutoffInvalidKeepsState(t *testing.T) {
	bank, _ := newTestPair(t, 80, 48000)
	before := bank.Coefficients()

	err := bank.SetCutoff(30000, 48000)
	if !errors.Is(err, design.ErrInvalidFrequency) {
		t.Fatalf("SetCutoff err = %v, want ErrInvalidFrequency", err)
	}
	if bank.Coefficients() != before || bank.Cutoff() != 80 {
		t.Fatal("failed SetCutoff modified the bank")
	}
}

func TestBank_PassthroughBeforeCutoff(t *testing.T) {
	bank, err := NewBank(8, 2)
	if err != nil {
		t.Fatal(err)
	}

	blk := surround.NewBlock[float64](64)
	for ch := range blk {
		copy(blk[ch], testutil.DeterministicNoise(uint64(ch+1), 1, 64))
	}
	want := surround.NewBlock[float64](64)
	for ch := range blk {
		copy(want[ch], blk[ch])
	}

	bank.Process(&blk)
	for ch := range blk {
		testutil.RequireSliceNearlyEqual(t, blk[ch], want[ch], 1e-15)
	}
}

func TestBank_LeavesLFEUntouched(t *testing.T) {
	bank, _ := newTestPair(t, 80, 48000)

	blk := surround.NewBlock[float64](256)
	lfe := testutil.DeterministicSine(40, 48000, 0.5, 256)
	copy(blk[surround.LFE], lfe)
	for _, ch := range surround.Mains {
		copy(blk[ch], testutil.DeterministicSine(40, 48000, 0.5, 256))
	}

	bank.Process(&blk)
	testutil.RequireSliceNearlyEqual(t, blk[surround.LFE], lfe, 0)
}

func TestBank_IdenticalChannelsStayIdentical(t *testing.T) {
	bank, _ := newTestPair(t, 120, 48000)

	blk := surround.NewBlock[float64](1024)
	noise := testutil.DeterministicNoise(7, 1, 1024)
	for _, ch := range surround.Mains {
		copy(blk[ch], noise)
	}

	bank.Process(&blk)
	for _, ch := range surround.Mains[1:] {
		testutil.RequireSliceNearlyEqual(t, blk[ch], blk[surround.L], 0)
	}
}

func TestBank_ResetMatchesFresh(t *testing.T) {
	bank, _ := newTestPair(t, 80, 48000)
	fresh, _ := newTestPair(t, 80, 48000)

	warm := surround.NewBlock[float64](128)
	copy(warm[surround.C], testutil.DeterministicNoise(3, 1, 128))
	bank.Process(&warm)
	bank.Reset()

	a := surround.NewBlock[float64](128)
	b := surround.NewBlock[float64](128)
	copy(a[surround.C], testutil.Impulse(128, 0))
	copy(b[surround.C], testutil.Impulse(128, 0))
	bank.Process(&a)
	fresh.Process(&b)
	testutil.RequireSliceNearlyEqual(t, a[surround.C], b[surround.C], 0)
}

func TestLowpassSum_SumExcludesLFE(t *testing.T) {
	sum, err := NewLowpassSum(4)
	if err != nil {
		t.Fatal(err)
	}
	sum.Prepare(4)

	blk := surround.NewBlock[float64](4)
	for ch := range blk {
		for i := range blk[ch] {
			blk[ch][i] = float64(ch + 1)
		}
	}

	// L+R+C+LS+RS = 1+2+3+5+6, LFE (4) excluded.
	got := sum.Sum(&blk)
	testutil.RequireSliceNearlyEqual(t, got, testutil.DC(17, 4), 0)
}

func TestLowpassSum_PanicsOnOversizedBlock(t *testing.T) {
	sum, _ := NewLowpassSum(4)
	sum.Prepare(8)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	blk := surround.NewBlock[float64](16)
	sum.Sum(&blk)
}

func TestLowpassSum_CutoffGain(t *testing.T) {
	_, sum := newTestPair(t, 80, 48000)

	if got := 20 * math.Log10(cmplx.Abs(sum.Response(80, 48000))); math.Abs(got+6.0206) > 0.02 {
		t.Fatalf("LowpassSum at cutoff = %.4f dB, want -6.02", got)
	}
}

// The mains high-pass plus the low-passed sum reconstruct the input away
// from the crossover region.
func TestComplementarity_Response(t *testing.T) {
	const (
		sr = 48000.0
		fc = 80.0
	)
	bank, sum := newTestPair(t, fc, sr)

	for _, f := range []float64{5, 10, 20, 320, 640, 1000, 5000, 20000} {
		h := bank.Response(f, sr) + sum.Response(f, sr)
		db := 20 * math.Log10(cmplx.Abs(h))
		if math.Abs(db) > 1 {
			t.Fatalf("|HP+LP| at %v Hz = %.3f dB, want within ±1 dB", f, db)
		}
	}
}

func TestComplementarity_Signal(t *testing.T) {
	const (
		sr = 48000.0
		fc = 80.0
		n  = 96000
	)

	tests := []struct {
		freq    float64
		wantHP  float64
		wantSum float64
	}{
		{1000, 1, 0},
		{20, 0, 1},
	}

	for _, tt := range tests {
		bank, sum := newTestPair(t, fc, sr)
		sum.Prepare(n)

		blk := surround.NewBlock[float64](n)
		copy(blk[surround.L], testutil.DeterministicSine(tt.freq, sr, 1, n))

		low := sum.Process(&blk)
		bank.Process(&blk)

		tail := n - 4800
		if got := peak(blk[surround.L][tail:]); math.Abs(got-tt.wantHP) > 0.01 {
			t.Fatalf("%v Hz: high-passed peak = %v, want %v", tt.freq, got, tt.wantHP)
		}
		if got := peak(low[tail:]); math.Abs(got-tt.wantSum) > 0.01 {
			t.Fatalf("%v Hz: low-passed sum peak = %v, want %v", tt.freq, got, tt.wantSum)
		}
	}
}
