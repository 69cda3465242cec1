// Copyright 2025 Sonic Labs
// This file is part of Metropolis, a sampling tool of the Aida Testing Infrastructure for Sonic
//
// Metropolis is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Metropolis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Metropolis. If not, see <http://www.gnu.org/licenses/>.

package metropolis

import (
	"gonum.org/v1/gonum/mat"
)

// Columns of the chain table.
const (
	ValueColumn     = 0 // state of the chain after the row
	RejectionColumn = 1 // cumulative rejection count after the row
	numColumns      = 2
)

// Chain is the N x 2 table produced by the sampler. It is filled once in
// increasing row order and is read-only afterwards.
type Chain struct {
	table    *mat.Dense
	rejected int
}

// newChain allocates a zeroed table with n rows; n must be positive.
func newChain(n int) *Chain {
	return &Chain{table: mat.NewDense(n, numColumns, nil)}
}

// NewChainFromRows rebuilds a chain from exported rows, e.g. rows loaded
// from a database. The rows must satisfy the chain invariants.
func NewChainFromRows(rows [][2]float64) (*Chain, error) {
	if len(rows) == 0 {
		return nil, invalidParameter("chain needs at least one row")
	}
	if rows[0][RejectionColumn] != 0 {
		return nil, invalidParameter("row 0 must hold no rejections, got %v", rows[0][RejectionColumn])
	}
	c := newChain(len(rows))
	for i, row := range rows {
		if i > 0 {
			step := row[RejectionColumn] - rows[i-1][RejectionColumn]
			switch step {
			case 0:
			case 1:
				if row[ValueColumn] != rows[i-1][ValueColumn] {
					return nil, invalidParameter("row %v is a rejection but changes the state", i)
				}
			default:
				return nil, invalidParameter("rejection count changes by %v at row %v", step, i)
			}
		}
		c.table.Set(i, ValueColumn, row[ValueColumn])
		c.table.Set(i, RejectionColumn, row[RejectionColumn])
	}
	c.rejected = int(rows[len(rows)-1][RejectionColumn])
	return c, nil
}

func (c *Chain) set(i int, x float64, k int) {
	c.table.Set(i, ValueColumn, x)
	c.table.Set(i, RejectionColumn, float64(k))
}

// Len returns the number of rows.
func (c *Chain) Len() int {
	r, _ := c.table.Dims()
	return r
}

// Value returns the state in row i.
func (c *Chain) Value(i int) float64 {
	return c.table.At(i, ValueColumn)
}

// Rejections returns the cumulative rejection count after row i.
func (c *Chain) Rejections(i int) int {
	return int(c.table.At(i, RejectionColumn))
}

// Rejected returns the total number of rejected proposals.
func (c *Chain) Rejected() int {
	return c.rejected
}

// Accepted returns the total number of accepted proposals.
func (c *Chain) Accepted() int {
	return c.Len() - 1 - c.rejected
}

// AcceptanceRate returns the fraction of accepted proposals, zero if
// no proposal was made.
func (c *Chain) AcceptanceRate() float64 {
	proposals := c.Len() - 1
	if proposals == 0 {
		return 0
	}
	return float64(c.Accepted()) / float64(proposals)
}

// Values returns a copy of the state column.
func (c *Chain) Values() []float64 {
	return mat.Col(nil, ValueColumn, c.table)
}

// Rows returns a copy of the table as (state, rejections) pairs.
func (c *Chain) Rows() [][2]float64 {
	rows := make([][2]float64, c.Len())
	for i := range rows {
		rows[i] = [2]float64{c.table.At(i, ValueColumn), c.table.At(i, RejectionColumn)}
	}
	return rows
}

// Matrix returns a copy of the table.
func (c *Chain) Matrix() *mat.Dense {
	return mat.DenseCopyOf(c.table)
}
