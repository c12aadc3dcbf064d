package surround

import "testing"

func TestNewBlock(t *testing.T) {
	b := NewBlock[float32](64)
	if b.Frames() != 64 {
		t.Fatalf("Frames() = %d, want 64", b.Frames())
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestValidateRagged(t *testing.T) {
	b := NewBlock[float64](16)
	b[RS] = b[RS][:8]
	if err := b.Validate(); err == nil {
		t.Fatal("expected error for ragged block")
	}
}

func TestSliceSharesStorage(t *testing.T) {
	b := NewBlock[float32](10)
	s := b.Slice(4, 8)
	if s.Frames() != 4 {
		t.Fatalf("Frames() = %d, want 4", s.Frames())
	}
	s[C][0] = 1
	if b[C][4] != 1 {
		t.Fatal("slice does not alias the parent block")
	}
}

func TestClear(t *testing.T) {
	b := NewBlock[float64](4)
	for ch := range b {
		for i := range b[ch] {
			b[ch][i] = 1
		}
	}
	b.Clear()
	for ch := range b {
		for i, v := range b[ch] {
			if v != 0 {
				t.Fatalf("b[%d][%d] = %v, want 0", ch, i, v)
			}
		}
	}
}
