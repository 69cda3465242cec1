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

package laplace

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Package for the standard Laplace (double-exponential) distribution
// with location 0 and scale 1, the target of the Metropolis sampler.

// Standard is the normalized target distribution. It is used for the
// reference moments and the CDF; it has no source and must not be sampled.
var Standard = distuv.Laplace{Mu: 0, Scale: 1}

// Density is the unnormalized density exp(-|x|).
func Density(x float64) float64 {
	return math.Exp(-math.Abs(x))
}

// Ratio computes the acceptance ratio of moving from x to y as the
// quotient of the two unnormalized densities. For |x| beyond ~745 the
// denominator underflows to zero and the ratio becomes +Inf or NaN.
func Ratio(y, x float64) float64 {
	return Density(y) / Density(x)
}

// LogRatio computes the same ratio as exp(|x|-|y|), which stays finite
// wherever the result is representable.
func LogRatio(y, x float64) float64 {
	return math.Exp(math.Abs(x) - math.Abs(y))
}

// PiecewiseLinearCDF samples the CDF of Standard at n+1 equidistant points of [lo, hi].
func PiecewiseLinearCDF(lo, hi float64, n int) [][2]float64 {
	if n <= 0 || hi <= lo {
		return nil
	}
	fn := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n)
		fn = append(fn, [2]float64{x, Standard.CDF(x)})
	}
	return fn
}
