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
	"strings"
	"time"

	"github.com/0xsoniclabs/metropolis/logger"
	"github.com/0xsoniclabs/metropolis/stochastic/rng"
	"github.com/0xsoniclabs/metropolis/stochastic/statistics/laplace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultSigma        = 0.05 // standard deviation of the Normal proposal
	DefaultInitialValue = 25.0 // seed value, deliberately far from the mode
	DefaultChainLength  = 5000 // number of rows including the seed row
)

// RatioForm selects how the Laplace acceptance ratio is evaluated.
type RatioForm int

const (
	// NaiveRatio evaluates exp(-|y|)/exp(-|x|).
	NaiveRatio RatioForm = iota
	// LogRatio evaluates exp(|x|-|y|), which does not underflow for large states.
	LogRatio
)

func (f RatioForm) String() string {
	switch f {
	case NaiveRatio:
		return "naive"
	case LogRatio:
		return "log"
	}
	return fmt.Sprintf("RatioForm(%d)", int(f))
}

// ParseRatioForm maps a ratio name ("naive" or "log") to its form.
func ParseRatioForm(name string) (RatioForm, error) {
	switch strings.ToLower(name) {
	case "naive", "":
		return NaiveRatio, nil
	case "log":
		return LogRatio, nil
	}
	return 0, invalidParameter("unknown acceptance ratio %q; expected \"naive\" or \"log\"", name)
}

func (f RatioForm) eval() (func(y, x float64) float64, error) {
	switch f {
	case NaiveRatio:
		return laplace.Ratio, nil
	case LogRatio:
		return laplace.LogRatio, nil
	}
	return nil, invalidParameter("unknown acceptance ratio %v", f)
}

// Params are the parameters of a single chain.
type Params struct {
	Sigma float64   // proposal standard deviation, > 0
	X0    float64   // seed value stored in row 0
	N     int       // number of rows, >= 1
	Ratio RatioForm // evaluation of the acceptance ratio
}

// DefaultParams returns the default chain parameters.
func DefaultParams() Params {
	return Params{
		Sigma: DefaultSigma,
		X0:    DefaultInitialValue,
		N:     DefaultChainLength,
		Ratio: NaiveRatio,
	}
}

// Validate checks the parameters and names the first one violating its constraint.
func (p Params) Validate() error {
	if !(p.Sigma > 0) || math.IsInf(p.Sigma, 1) {
		return invalidParameter("sigma must be a finite value greater than zero, got %v", p.Sigma)
	}
	if math.IsNaN(p.X0) || math.IsInf(p.X0, 0) {
		return invalidParameter("x0 must be finite, got %v", p.X0)
	}
	if p.N <= 0 {
		return invalidParameter("N must be at least one, got %v", p.N)
	}
	if _, err := p.Ratio.eval(); err != nil {
		return err
	}
	return nil
}

// Sample runs a chain of n rows seeded with x0 using proposals of standard
// deviation sigma and the two-exponential acceptance ratio.
func Sample(rg rng.Randomizer, sigma float64, x0 float64, n int) (*Chain, error) {
	return run(rg, Params{Sigma: sigma, X0: x0, N: n, Ratio: NaiveRatio})
}

func run(rg rng.Randomizer, p Params) (*Chain, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rg == nil {
		return nil, invalidParameter("randomizer is nil")
	}
	ratio, _ := p.Ratio.eval()

	c := newChain(p.N)
	x, k := p.X0, 0
	c.set(0, x, k)
	for i := 1; i < p.N; i++ {
		// draw order is part of the reproducibility contract
		z := rg.Uniform()
		y := rg.Normal(x, p.Sigma)
		if z < ratio(y, x) {
			x = y
		} else {
			k++
		}
		c.set(i, x, k)
	}
	c.rejected = k
	return c, nil
}

// Sampler runs chains with a fixed randomizer and parameter set and reports
// progress through a logger.
type Sampler struct {
	rg     rng.Randomizer
	params Params
	log    logger.Logger
}

// NewSampler validates the parameters and returns a sampler. A nil logger
// is replaced by one that only reports errors.
func NewSampler(rg rng.Randomizer, params Params, log logger.Logger) (*Sampler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rg == nil {
		return nil, invalidParameter("randomizer is nil")
	}
	if log == nil {
		log = logger.NewLogger("error", "Metropolis")
	}
	return &Sampler{rg: rg, params: params, log: log}, nil
}

// Params returns the parameters of the sampler.
func (s *Sampler) Params() Params {
	return s.params
}

// Run draws a new chain. Consecutive runs continue the randomizer's stream.
func (s *Sampler) Run() (*Chain, error) {
	p := message.NewPrinter(language.English)
	s.log.Noticef("Sampling %v rows; sigma %v, x0 %v, %v ratio", p.Sprintf("%d", s.params.N), s.params.Sigma, s.params.X0, s.params.Ratio)

	start := time.Now()
	c, err := run(s.rg, s.params)
	if err != nil {
		return nil, err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	s.log.Infof("Sampling took %vh %vm %vs", hours, minutes, seconds)
	s.log.Noticef("Accepted %v and rejected %v proposals; acceptance rate %.2f%%",
		p.Sprintf("%d", c.Accepted()), p.Sprintf("%d", c.Rejected()), 100*c.AcceptanceRate())
	return c, nil
}
