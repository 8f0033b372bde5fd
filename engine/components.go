package engine

// neighborOffsets fixes the 8-connected traversal order so that, for a
// given mask, component membership (and therefore every downstream
// computation) is deterministic regardless of traversal implementation
// details.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// component is a connected blob discovered during labeling.
type component struct {
	pixels                 []int // flat y*W+x indices
	minX, maxX, minY, maxY int
}

// filterComponents performs 8-connected component labeling over m using an
// explicit stack (avoiding recursion blow-up on large masks) and keeps
// only components passing the size and aspect gates. It returns a mask
// containing exactly the surviving pixels.
func filterComponents(m *Mask) *Mask {
	w, h := m.W, m.H
	visited := make([]bool, w*h)
	out := NewMask(w, h)

	minSize := w * h / 1000
	if minSize < 1000 {
		minSize = 1000
	}

	stack := make([]int, 0, 1024)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			start := y*w + x
			if visited[start] || !m.Bits[start] {
				continue
			}

			comp := component{minX: x, maxX: x, minY: y, maxY: y}
			stack = stack[:0]
			stack = append(stack, start)
			visited[start] = true

			for len(stack) > 0 {
				idx := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := idx%w, idx/w
				comp.pixels = append(comp.pixels, idx)
				if cx < comp.minX {
					comp.minX = cx
				}
				if cx > comp.maxX {
					comp.maxX = cx
				}
				if cy < comp.minY {
					comp.minY = cy
				}
				if cy > comp.maxY {
					comp.maxY = cy
				}

				for _, off := range neighborOffsets {
					nx, ny := cx+off[0], cy+off[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nidx := ny*w + nx
					if visited[nidx] || !m.Bits[nidx] {
						continue
					}
					visited[nidx] = true
					stack = append(stack, nidx)
				}
			}

			if keepsComponent(comp, minSize) {
				for _, idx := range comp.pixels {
					out.Bits[idx] = true
				}
			}
		}
	}
	return out
}

// keepsComponent applies the size gate (|C| >= minSize) and the aspect
// gate (0.3 < w/h < 10.0).
func keepsComponent(c component, minSize int) bool {
	if len(c.pixels) < minSize {
		return false
	}
	w := float64(c.maxX - c.minX + 1)
	h := float64(c.maxY - c.minY + 1)
	aspect := w / h
	return aspect > 0.3 && aspect < 10.0
}
