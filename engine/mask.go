package engine

// morphOpen applies a 3x3 morphological opening (erosion then dilation) to
// m. Border pixels (the outermost ring, where a full 3x3 neighborhood
// doesn't exist) are always false in both passes.
//
// The erosion predicate is "all 9 neighbors true". The original
// implementation additionally required "at least 6 true neighbors", but
// that check is strictly weaker than "all 9 true" and never changes the
// result — it's a no-op left over from an earlier, looser threshold. This
// implementation keeps only the dominant all-true predicate.
func morphOpen(m *Mask) *Mask {
	eroded := erode(m)
	return dilate(eroded)
}

func erode(m *Mask) *Mask {
	out := NewMask(m.W, m.H)
	for y := 1; y < m.H-1; y++ {
		for x := 1; x < m.W-1; x++ {
			if allNineTrue(m, x, y) {
				out.Set(x, y)
			}
		}
	}
	return out
}

func dilate(m *Mask) *Mask {
	out := NewMask(m.W, m.H)
	for y := 1; y < m.H-1; y++ {
		for x := 1; x < m.W-1; x++ {
			if anyNineTrue(m, x, y) {
				out.Set(x, y)
			}
		}
	}
	return out
}

func allNineTrue(m *Mask, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !m.At(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}

func anyNineTrue(m *Mask, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if m.At(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}
