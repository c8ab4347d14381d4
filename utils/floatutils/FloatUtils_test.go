package floatutils

import "testing"

func TestMaxSlice(t *testing.T) {
	max, indices := MaxSlice([]float64{1, 5, 3, 5, 2})
	if max != 5 {
		t.Errorf("wrong max \n\twant(5) \n\thave(%v)", max)
	}
	if len(indices) != 2 || indices[0] != 1 || indices[1] != 3 {
		t.Errorf("wrong max indices \n\twant([1 3]) \n\thave(%v)", indices)
	}
}

func TestMaxSliceFirstElement(t *testing.T) {
	// The first element must not be duplicated when it is the unique max
	max, indices := MaxSlice([]float64{7, 1, 2})
	if max != 7 {
		t.Errorf("wrong max \n\twant(7) \n\thave(%v)", max)
	}
	if len(indices) != 1 || indices[0] != 0 {
		t.Errorf("wrong max indices \n\twant([0]) \n\thave(%v)", indices)
	}
}

func TestClip(t *testing.T) {
	if got := Clip(5, 0, 1); got != 1 {
		t.Errorf("wrong clipped value \n\twant(1) \n\thave(%v)", got)
	}
	if got := Clip(-5, 0, 1); got != 0 {
		t.Errorf("wrong clipped value \n\twant(0) \n\thave(%v)", got)
	}
	if got := Clip(0.5, 0, 1); got != 0.5 {
		t.Errorf("wrong clipped value \n\twant(0.5) \n\thave(%v)", got)
	}
}
