package dct

import "math"

// Transform holds the precomputed 2D orthonormal cosine basis for
// square blocks of edge length n.
type Transform struct {
	n     int
	phi2d []float64
}

func New(n int) *Transform {
	t := &Transform{n: n}

	nf := float64(n)

	// 1D basis functions
	phi := make([]float64, n*n)
	for j := range n {
		// i = 0
		phi[j] = 1.0 / math.Sqrt(nf)
	}
	for i := 1; i < n; i++ {
		for j := range n {
			phi[i*n+j] = math.Sqrt(2.0/nf) *
				math.Cos(
					(float64(i)*math.Pi*(float64(j)*2+1))/
						(2.0*nf),
				)
		}
	}

	// 2D basis functions
	t.phi2d = make([]float64, n*n*n*n)
	for u := range n { // coefficient row
		for v := range n { // coefficient column
			for x := range n { // data row
				for y := range n { // data column
					idx := u*n*n*n + v*n*n + x*n + y
					t.phi2d[idx] = phi[u*n+x] * phi[v*n+y]
				}
			}
		}
	}

	return t
}

// Exec applies the forward transform to data (row-major n*n block) and
// returns the coefficients along with a function that applies the
// inverse transform of the (possibly modified) coefficients back into
// data.
func (t *Transform) Exec(data []float64) ([]float64, func()) {
	n := t.n
	phi := t.phi2d
	result := make([]float64, n*n)

	for u := range n {
		for v := range n {
			sum := 0.0
			for x := range n {
				for y := range n {
					phiIdx := u*n*n*n + v*n*n + x*n + y
					sum += phi[phiIdx] * data[x*n+y]
				}
			}
			result[u*n+v] = sum
		}
	}

	inverse := func() {
		for x := range n {
			for y := range n {
				sum := 0.0
				for u := range n {
					for v := range n {
						phiIdx := u*n*n*n + v*n*n + x*n + y
						sum += phi[phiIdx] * result[u*n+v]
					}
				}
				data[x*n+y] = sum
			}
		}
	}
	return result, inverse
}
