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

package visualizer

import (
	"fmt"
	"math"
	"sync"

	"github.com/0xsoniclabs/metropolis/stochastic/metropolis"
	"github.com/0xsoniclabs/metropolis/stochastic/statistics/continuous"
	"github.com/0xsoniclabs/metropolis/stochastic/statistics/laplace"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// NumTracePoints bounds the number of points of the trace and rejection charts.
const NumTracePoints = 2000

// numTargetPoints is the resolution of the Laplace reference CDF.
const numTargetPoints = 200

type viewState struct {
	summary    metropolis.Summary
	trace      [][2]float64 // (row, state)
	rejections [][2]float64 // (row, cumulative rejections)
	ecdf       [][2]float64 // empirical CDF of the kept states
	target     [][2]float64 // Laplace CDF over the range of the kept states
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(chain *metropolis.Chain, burnIn float64) error {
	if chain == nil {
		return fmt.Errorf("visualizer: chain is nil")
	}
	derived, err := buildViewState(chain, burnIn)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func buildViewState(chain *metropolis.Chain, burnIn float64) (*viewState, error) {
	summary, err := chain.Summarize(burnIn)
	if err != nil {
		return nil, fmt.Errorf("visualizer: summarize chain: %w", err)
	}
	rows := chain.Rows()
	trace := make([][2]float64, len(rows))
	rejections := make([][2]float64, len(rows))
	for i, row := range rows {
		trace[i] = [2]float64{float64(i), row[metropolis.ValueColumn]}
		rejections[i] = [2]float64{float64(i), row[metropolis.RejectionColumn]}
	}

	kept := chain.Values()[summary.BurnIn:]
	ecdf, err := continuous.ECDF(kept, continuous.NumECDFPoints)
	if err != nil {
		return nil, fmt.Errorf("visualizer: empirical CDF: %w", err)
	}

	return &viewState{
		summary:    summary,
		trace:      simplifyPolyline(trace, NumTracePoints),
		rejections: simplifyPolyline(rejections, NumTracePoints),
		ecdf:       ecdf,
		target:     targetCDF(ecdf),
	}, nil
}

// simplifyPolyline reduces a polyline to at most n points with the
// Visvalingam-Whyatt algorithm; the end points are kept.
func simplifyPolyline(points [][2]float64, n int) [][2]float64 {
	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = orb.Point(p)
	}
	reduced := simplify.VisvalingamKeep(n).Simplify(ls).(orb.LineString)
	out := make([][2]float64, len(reduced))
	for i := range reduced {
		out[i] = [2]float64(reduced[i])
	}
	return out
}

// targetCDF samples the Laplace CDF over the support of an empirical CDF,
// widened to at least [-5, 5].
func targetCDF(ecdf [][2]float64) [][2]float64 {
	lo := math.Min(-5, ecdf[0][0])
	hi := math.Max(5, ecdf[len(ecdf)-1][0])
	return laplace.PiecewiseLinearCDF(lo, hi, numTargetPoints)
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: chain not initialised")
	}
	return currentState, nil
}
