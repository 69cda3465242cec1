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

package continuous

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// NumECDFPoints is the default number of points kept in a compressed ECDF.
const NumECDFPoints = 300

// CDF evaluates a piecewise linear cumulative distribution function at x.
// The function is given as points (x_i, y_i) with non-decreasing
// coordinates; it is 0 left of the first point and 1 right of the last.
func CDF(f [][2]float64, x float64) float64 {
	if len(f) == 0 || x < f[0][0] {
		return 0.0
	}
	for i := range len(f) - 1 {
		if f[i+1][0] >= x {
			if f[i+1][0] == f[i][0] {
				continue // vertical segment
			}
			scale := (x - f[i][0]) / (f[i+1][0] - f[i][0])
			return f[i][1] + scale*(f[i+1][1]-f[i][1])
		}
	}
	return 1.0 // x is beyond the last point
}

// Check whether the piecewise linear function is valid as a CDF.
// The function must start at probability 0, end at probability 1 and
// its points must be monotonically non-decreasing in both coordinates.
func Check(f [][2]float64) error {
	if len(f) < 2 {
		return fmt.Errorf("CDF must have at least start and end point")
	}
	if f[0][1] != 0.0 {
		return fmt.Errorf("CDF must start at probability 0, but starts at (%v,%v)", f[0][0], f[0][1])
	}
	last := len(f) - 1
	if f[last][1] != 1.0 {
		return fmt.Errorf("CDF must end at probability 1, but ends at (%v,%v)", f[last][0], f[last][1])
	}
	for i := range len(f) - 1 {
		if f[i][0] > f[i+1][0] || f[i][1] > f[i+1][1] {
			return fmt.Errorf("CDF points must be monotonically increasing, but point %v (%v,%v) is greater than point %v (%v,%v)", i, f[i][0], f[i][1], i+1, f[i+1][0], f[i+1][1])
		}
	}
	return nil
}

// ECDF computes the empirical cumulative distribution function of the
// samples. Repeated values, as produced by rejected Metropolis proposals,
// collapse into a single step. The ECDF is compressed with the
// Visvalingam-Whyatt algorithm to at most numPoints points.
func ECDF(samples []float64, numPoints int) ([][2]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("ECDF: no samples")
	}
	if numPoints < 2 {
		return nil, fmt.Errorf("ECDF: at least two points are required, got %v", numPoints)
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	ls := orb.LineString{orb.Point{sorted[0], 0.0}}
	for i := range sorted {
		if i+1 < len(sorted) && sorted[i+1] == sorted[i] {
			continue
		}
		ls = append(ls, orb.Point{sorted[i], float64(i+1) / n})
	}
	// the last cumulative value must be exactly one
	ls[len(ls)-1][1] = 1.0

	// reduce full ecdf using Visvalingam-Whyatt algorithm to
	// "numPoints" points. See:
	// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
	simplifier := simplify.VisvalingamKeep(numPoints)
	compressed := simplifier.Simplify(ls.Clone()).(orb.LineString)
	ecdf := make([][2]float64, len(compressed))
	for i := range compressed {
		ecdf[i] = [2]float64(compressed[i])
	}
	if err := Check(ecdf); err != nil {
		return nil, fmt.Errorf("ECDF: cannot create valid CDF from samples; %w", err)
	}
	return ecdf, nil
}
