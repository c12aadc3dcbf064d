package core

// Widen copies float32 samples into a float64 work buffer. It panics if the
// lengths differ.
func Widen(dst []float64, src []float32) {
	if len(dst) != len(src) {
		panic("core: Widen length mismatch")
	}
	for i, x := range src {
		dst[i] = float64(x)
	}
}

// Narrow copies float64 work samples back to float32. It panics if the
// lengths differ.
func Narrow(dst []float32, src []float64) {
	if len(dst) != len(src) {
		panic("core: Narrow length mismatch")
	}
	for i, x := range src {
		dst[i] = float32(x)
	}
}
