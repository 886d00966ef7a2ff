package finance

import (
	"math"
	"testing"
)

func TestFloatCloseRelative(t *testing.T) {
	// Large magnitudes: relative tolerance carries the comparison.
	if !FloatClose(1e12, 1e12*(1+1e-11), RTol, ATol) {
		t.Error("values within relative tolerance reported as not close")
	}
	if FloatClose(1e12, 1e12*1.01, RTol, ATol) {
		t.Error("values outside relative tolerance reported as close")
	}
}

func TestFloatCloseAbsolute(t *testing.T) {
	// Near zero: absolute tolerance carries the comparison.
	if !FloatClose(0, 1e-6, RTol, ATol) {
		t.Error("values within absolute tolerance reported as not close")
	}
	if FloatClose(0, 1e-3, RTol, ATol) {
		t.Error("values outside absolute tolerance reported as close")
	}
}

func TestFloatCloseNaN(t *testing.T) {
	if FloatClose(math.NaN(), math.NaN(), RTol, ATol) {
		t.Error("NaN compared close to NaN")
	}
	if FloatClose(math.NaN(), 0, RTol, ATol) {
		t.Error("NaN compared close to 0")
	}
}
