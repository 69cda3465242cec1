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
	"fmt"
	"math"

	"github.com/0xsoniclabs/metropolis/stochastic/statistics/laplace"
	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the rows of a chain kept after burn-in.
type Summary struct {
	Rows           int     // total number of rows
	BurnIn         int     // number of leading rows discarded
	Mean           float64 // sample mean of the kept states
	Variance       float64 // unbiased sample variance of the kept states; NaN for a single row
	Rejected       int     // rejections over the whole chain
	AcceptanceRate float64 // acceptance rate over the whole chain
}

// Kept returns the number of rows entering mean and variance.
func (s Summary) Kept() int {
	return s.Rows - s.BurnIn
}

// Summarize discards the leading burnIn fraction of rows, burnIn in [0,1),
// and computes the moments of the remaining states.
func (c *Chain) Summarize(burnIn float64) (Summary, error) {
	if !(burnIn >= 0 && burnIn < 1) {
		return Summary{}, fmt.Errorf("burn-in fraction must be in [0,1), got %v", burnIn)
	}
	n := c.Len()
	skip := int(math.Floor(burnIn * float64(n)))
	kept := c.Values()[skip:]
	mean, variance := stat.MeanVariance(kept, nil)
	return Summary{
		Rows:           n,
		BurnIn:         skip,
		Mean:           mean,
		Variance:       variance,
		Rejected:       c.Rejected(),
		AcceptanceRate: c.AcceptanceRate(),
	}, nil
}

// String renders the summary next to the moments of the standard Laplace distribution.
func (s Summary) String() string {
	tw := table.NewWriter()
	tw.SetTitle("Metropolis chain")
	tw.AppendHeader(table.Row{"Statistic", "Chain", "Laplace"})
	tw.AppendRows([]table.Row{
		{"rows", s.Rows, ""},
		{"burn-in rows", s.BurnIn, ""},
		{"mean", fmt.Sprintf("%.4f", s.Mean), fmt.Sprintf("%.4f", laplace.Standard.Mean())},
		{"variance", fmt.Sprintf("%.4f", s.Variance), fmt.Sprintf("%.4f", laplace.Standard.Variance())},
		{"rejections", s.Rejected, ""},
		{"acceptance rate", fmt.Sprintf("%.2f%%", 100*s.AcceptanceRate), ""},
	})
	return tw.Render()
}
