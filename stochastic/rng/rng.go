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

// Package rng provides the source of random draws consumed by a Metropolis chain.
package rng

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//go:generate mockgen -source rng.go -destination rng_mock.go -package rng

// Randomizer supplies the two draws of a Metropolis iteration.
// Implementations are not required to be safe for concurrent use;
// every chain owns its own randomizer.
type Randomizer interface {
	Uniform() float64                 // draw from Uniform(0,1)
	Normal(mean, sd float64) float64 // draw from Normal(mean, sd)
}

// GonumRandomizer draws uniform and normal variates from a single seeded source.
type GonumRandomizer struct {
	src     rand.Source
	uniform distuv.Uniform
}

// New creates a randomizer whose stream is fully determined by seed.
func New(seed uint64) *GonumRandomizer {
	return NewFromSource(rand.NewSource(seed))
}

// NewFromSource creates a randomizer on top of an existing source.
func NewFromSource(src rand.Source) *GonumRandomizer {
	return &GonumRandomizer{
		src:     src,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

// TimeSeed derives a seed from the wall clock for runs that do not ask for reproducibility.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

func (r *GonumRandomizer) Uniform() float64 {
	return r.uniform.Rand()
}

func (r *GonumRandomizer) Normal(mean, sd float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: sd, Src: r.src}.Rand()
}
