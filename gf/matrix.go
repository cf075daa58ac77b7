package gf

import "fmt"

// Matrix is a dense row-major matrix over GF(p). Entries are kept reduced
// to [0, p) at all times, so a plain zero comparison is the mod-p zero test.
type Matrix struct {
	f    Field
	rows int
	cols int
	data []Elem
}

// NewMatrix returns a zeroed rows x cols matrix over f.
func NewMatrix(f Field, rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("gf: negative dimension %dx%d", rows, cols)
	}
	return &Matrix{f: f, rows: rows, cols: cols, data: make([]Elem, rows*cols)}, nil
}

// FromRows builds a matrix from explicit row vectors. All rows must share
// one length; entries are reduced mod p.
func FromRows(f Field, rows [][]Elem) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{f: f}, nil
	}
	cols := len(rows[0])
	m, err := NewMatrix(f, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("gf: ragged matrix at row %d: len %d, want %d", i, len(row), cols)
		}
		for j, v := range row {
			m.data[i*cols+j] = Elem(uint64(v) % f.p)
		}
	}
	return m, nil
}

// Field returns the field the matrix is defined over.
func (m *Matrix) Field() Field { return m.f }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) Elem { return m.data[i*m.cols+j] }

// Set stores v (reduced mod p) at row i, column j.
func (m *Matrix) Set(i, j int, v Elem) { m.data[i*m.cols+j] = Elem(uint64(v) % m.f.p) }

// Row returns a view of row i. Mutating the slice mutates the matrix.
func (m *Matrix) Row(i int) []Elem { return m.data[i*m.cols : (i+1)*m.cols] }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{f: m.f, rows: m.rows, cols: m.cols, data: make([]Elem, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal reports whether two matrices have identical shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Transpose returns the transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{f: m.f, rows: m.cols, cols: m.rows, data: make([]Elem, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// AugmentIdentity returns [m | I] with an identity block of size rows.
func (m *Matrix) AugmentIdentity() *Matrix {
	out := &Matrix{f: m.f, rows: m.rows, cols: m.cols + m.rows, data: make([]Elem, m.rows*(m.cols+m.rows))}
	for i := 0; i < m.rows; i++ {
		copy(out.data[i*out.cols:i*out.cols+m.cols], m.data[i*m.cols:(i+1)*m.cols])
		out.data[i*out.cols+m.cols+i] = 1
	}
	return out
}

// RREF reduces the matrix in place to reduced row-echelon form over GF(p)
// and returns the pivot columns in order. Columns are scanned left to
// right; the pivot for the current rank row is the first row at or below it
// with a non-zero entry, which is swapped up, scaled to 1 and eliminated
// from every other row. The scan stops as soon as rank equals the row
// count, since no further column can produce a pivot.
func (m *Matrix) RREF() []int {
	rank := 0
	pivots := make([]int, 0, m.rows)
	for c := 0; c < m.cols && rank < m.rows; c++ {
		pr := -1
		for r := rank; r < m.rows; r++ {
			if m.At(r, c) != 0 {
				pr = r
				break
			}
		}
		if pr == -1 {
			continue
		}
		if pr != rank {
			m.swapRows(pr, rank)
		}
		if pv := m.At(rank, c); pv != 1 {
			inv, err := m.f.Inverse(pv)
			if err != nil {
				panic("gf: zero pivot escaped selection")
			}
			m.scaleRow(rank, inv)
		}
		for r := 0; r < m.rows; r++ {
			if r == rank {
				continue
			}
			if mult := m.At(r, c); mult != 0 {
				m.addScaledRow(r, rank, m.f.Neg(mult))
			}
		}
		pivots = append(pivots, c)
		rank++
	}
	return pivots
}

func (m *Matrix) swapRows(a, b int) {
	ra, rb := m.Row(a), m.Row(b)
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

func (m *Matrix) scaleRow(i int, s Elem) {
	row := m.Row(i)
	for j := range row {
		row[j] = m.f.Mul(row[j], s)
	}
}

// addScaledRow adds s times row src to row dst.
func (m *Matrix) addScaledRow(dst, src int, s Elem) {
	rd, rs := m.Row(dst), m.Row(src)
	for j := range rd {
		rd[j] = m.f.Add(rd[j], m.f.Mul(s, rs[j]))
	}
}
