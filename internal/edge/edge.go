package edge

import "math"

// Gray flattens interleaved samples into a per-pixel luminance field,
// the arithmetic mean of the channels, kept in float64 so that mask
// thresholds see sub-integer gradients.
func Gray(pix []uint8, h, w, c int) []float64 {
	gray := make([]float64, h*w)
	for i := range gray {
		sum := 0
		for k := range c {
			sum += int(pix[i*c+k])
		}
		gray[i] = float64(sum) / float64(c)
	}
	return gray
}

// Mask marks pixels whose Sobel gradient magnitude exceeds threshold.
// Borders are handled by clamping sample coordinates.
func Mask(gray []float64, h, w int, threshold float64) []bool {
	at := func(y, x int) float64 {
		if y < 0 {
			y = 0
		} else if y >= h {
			y = h - 1
		}
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		return gray[y*w+x]
	}

	mask := make([]bool, h*w)
	for y := range h {
		for x := range w {
			var gx, gy float64
			for d := -1; d <= 1; d++ {
				smooth := 2.0
				if d != 0 {
					smooth = 1.0
				}
				gx += smooth * (at(y+d, x+1) - at(y+d, x-1))
				gy += smooth * (at(y+1, x+d) - at(y-1, x+d))
			}
			mask[y*w+x] = math.Hypot(gx, gy) > threshold
		}
	}
	return mask
}

// Count returns the number of marked pixels.
func Count(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}

// Positions lists the flat sample indices of all marked pixels in
// channel-major order: every marked pixel of channel 0 in row-major
// order, then channel 1, and so on. Decode depends on this exact order.
func Positions(mask []bool, h, w, c int) []int {
	pos := make([]int, 0, Count(mask)*c)
	for k := range c {
		for i, m := range mask {
			if m {
				pos = append(pos, i*c+k)
			}
		}
	}
	return pos
}
