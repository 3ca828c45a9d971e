package affinity

import (
	"fmt"
)

const (
	// PointDim is the coordinate dimensionality of every point.
	PointDim = 2

	// DecayRate is the fixed exponential decay applied to pairwise
	// distances: entry (i,j) of a result is exp(DecayRate * d(i,j)).
	DecayRate float32 = -0.25
)

// Points is an ordered set of N two-dimensional points stored as a
// row-major N×2 float32 buffer. Index i refers to the same point for
// the duration of a computation; the buffer is read-only while a
// computation runs.
type Points struct {
	n  int
	xy []float32 // row-major n×2
}

// NewPoints allocates a zeroed point set of n points.
func NewPoints(n int) (*Points, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	return &Points{n: n, xy: make([]float32, n*PointDim)}, nil
}

// PointsFromRows builds a point set from per-point coordinate rows.
// Every row must have exactly two coordinates; ragged or wrong-arity
// rows fail fast with a shape error and no partial result.
func PointsFromRows(rows [][]float32) (*Points, error) {
	p := &Points{n: len(rows), xy: make([]float32, len(rows)*PointDim)}
	for i, row := range rows {
		if len(row) != PointDim {
			return nil, NewShapeError("PointsFromRows",
				fmt.Sprintf("row %d has %d coordinates, want %d", i, len(row), PointDim))
		}
		p.xy[i*PointDim] = row[0]
		p.xy[i*PointDim+1] = row[1]
	}
	return p, nil
}

// PointsFromFlat builds a point set from a row-major flat buffer of
// interleaved x,y coordinates. The buffer is copied. A length that is
// not a multiple of two fails fast with a shape error.
func PointsFromFlat(xy []float32) (*Points, error) {
	if len(xy)%PointDim != 0 {
		return nil, NewShapeError("PointsFromFlat",
			fmt.Sprintf("flat buffer length %d is not a multiple of %d", len(xy), PointDim))
	}
	p := &Points{n: len(xy) / PointDim, xy: make([]float32, len(xy))}
	copy(p.xy, xy)
	return p, nil
}

// Len returns the number of points
func (p *Points) Len() int {
	return p.n
}

// At returns the coordinates of point i
func (p *Points) At(i int) (x, y float32) {
	return p.xy[i*PointDim], p.xy[i*PointDim+1]
}

// Set stores the coordinates of point i
func (p *Points) Set(i int, x, y float32) {
	p.xy[i*PointDim] = x
	p.xy[i*PointDim+1] = y
}

// Data returns the underlying row-major buffer. The slice aliases the
// point set's storage; callers must not mutate it during a computation.
func (p *Points) Data() []float32 {
	return p.xy
}

// checkPoints validates a point set before a computation starts.
// Constructors enforce the N×2 shape, so this guards against nil and
// hand-built values only.
func checkPoints(op string, p *Points) error {
	if p == nil {
		return ErrNilPoints
	}
	if len(p.xy) != p.n*PointDim {
		return NewShapeError(op,
			fmt.Sprintf("buffer holds %d values for %d points, want %d", len(p.xy), p.n, p.n*PointDim))
	}
	return nil
}

// Matrix is a square N×N affinity matrix in row-major order. Each
// computation allocates a fresh matrix owned exclusively by the caller.
type Matrix struct {
	n    int
	data []float32
}

func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float32, n*n)}
}

// Dim returns N, the number of rows and columns
func (m *Matrix) Dim() int {
	return m.n
}

// At returns entry (i,j)
func (m *Matrix) At(i, j int) float32 {
	return m.data[i*m.n+j]
}

// Row returns row i as a slice aliasing the matrix storage
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.n : (i+1)*m.n]
}

// Data returns the full row-major buffer aliasing the matrix storage
func (m *Matrix) Data() []float32 {
	return m.data
}
