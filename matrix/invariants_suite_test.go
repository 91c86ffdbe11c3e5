// Package matrix_test runs randomized Set sequences against a dense twin and
// checks the storage invariants after every mutation.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matlab/matrix"
)

// InvariantSuite mutates one compressed matrix per variant/format pair.
type InvariantSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *InvariantSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(2024))
}

// mutate performs n random Sets on m and mirrors them onto a dense twin,
// skipping coordinates outside the variant region.
func (s *InvariantSuite) mutate(m *matrix.Compressed, n int) *matrix.Conventional {
	twin, err := matrix.NewConventional(m.Rows(), m.Cols())
	s.Require().NoError(err)
	for k := 0; k < n; k++ {
		i, j := s.rng.Intn(m.Rows()), s.rng.Intn(m.Cols())
		v := float64(s.rng.Intn(5)) // zero one time in five
		err = m.Set(i, j, v)
		if !m.Variant().Stores(i, j) {
			s.Require().ErrorIs(err, matrix.ErrInvalidCoordinate)
			continue
		}
		s.Require().NoError(err)
		s.Require().NoError(twin.Set(i, j, v))
		s.Require().NoError(m.Validate(), "after Set(%d,%d,%g)", i, j, v)
	}
	if m.Variant().Mirrors() {
		twin.Do(func(i, j int, v float64) bool {
			if i < j {
				_ = twin.Set(j, i, v)
			}
			return true
		})
	}

	return twin
}

func (s *InvariantSuite) TestMutationsMatchDense() {
	for _, v := range []matrix.Variant{matrix.General, matrix.LowerTriangular, matrix.UpperTriangular, matrix.Symmetric} {
		for _, f := range []matrix.Format{matrix.Column, matrix.Row} {
			s.Run(fmt.Sprintf("%s/%s", v, f), func() {
				m, err := matrix.NewCompressed(9, 9, matrix.WithVariant(v), matrix.WithFormat(f))
				s.Require().NoError(err)
				twin := s.mutate(m, 400)

				s.Equal(twin.ColumnMajor(), m.ToConventional().ColumnMajor())
				for i := 0; i < m.Rows(); i++ {
					for j := 0; j < m.Cols(); j++ {
						got, err := m.At(i, j)
						s.Require().NoError(err)
						want, _ := twin.At(i, j)
						s.Equal(want, got, "(%d,%d)", i, j)
					}
				}
			})
		}
	}
}

func (s *InvariantSuite) TestStructuralOpsKeepInvariants() {
	m, err := matrix.NewCompressed(12, 7)
	s.Require().NoError(err)
	s.mutate(m, 200)

	tr := m.Transpose()
	s.NoError(tr.Validate())
	s.Equal(m.NonZeros(), tr.NonZeros())

	row := m.ToFormat(matrix.Row)
	s.NoError(row.Validate())
	ok, err := matrix.Equal(m, row)
	s.NoError(err)
	s.True(ok)

	s.NoError(m.Resize(5, 10))
	s.NoError(m.Validate())
	s.NoError(m.Resize(12, 3))
	s.NoError(m.Validate())
	for e := range m.All() {
		s.Less(e.Row, 5)
		s.Less(e.Col, 3)
	}
}

func (s *InvariantSuite) TestCorruptionDetected() {
	m, err := matrix.NewCompressed(3, 3)
	s.Require().NoError(err)
	s.mutate(m, 30)

	matrix.ExportedCorrupt(m, matrix.RawStorage{
		Values:  []float64{1, 2},
		Indices: []int{2, 1},
		Offsets: []int{0, 2, 2, 2},
	})
	s.ErrorIs(m.Validate(), matrix.ErrCorruptStorage)
}

func TestInvariantSuite(t *testing.T) {
	suite.Run(t, new(InvariantSuite))
}
