package biquad

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad/internal/kernel"
)

func TestKernels_MatchDifferenceEquation(t *testing.T) {
	entries := kernel.Default.Entries()
	if len(entries) == 0 {
		t.Fatal("no kernels registered")
	}

	c := stableSection()
	for _, e := range entries {
		// Lengths around the unroll widths exercise every remainder path.
		for n := range 11 {
			in := testInput()[:n]
			want := directForm1(c, in)

			buf := append([]float64(nil), in...)
			d0, d1 := e.Block(kernel.Coefficients(c), 0, 0, buf)
			for i := range buf {
				if !almostEqual(buf[i], want[i], eps) {
					t.Fatalf("%s n=%d sample %d: got %v, want %v", e.Name, n, i, buf[i], want[i])
				}
			}

			ref := NewSection(c)
			for _, x := range in {
				ref.ProcessSample(x)
			}
			if st := ref.State(); !almostEqual(d0, st[0], eps) || !almostEqual(d1, st[1], eps) {
				t.Fatalf("%s n=%d: state (%v, %v), want %v", e.Name, n, d0, d1, st)
			}
		}
	}
}

func TestSelectKernel_ForcedGeneric(t *testing.T) {
	e := selectKernel(cpu.Features{ForceGeneric: true, HasSSE2: true, HasAVX2: true})
	if e.Name != "generic" {
		t.Fatalf("selected %q, want generic", e.Name)
	}
}
