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

// Package metropolis implements a random-walk Metropolis sampler whose
// target is the standard Laplace distribution.
//
// Every iteration draws z ~ Uniform(0,1) and then a proposal
// y ~ Normal(x, sigma) centred on the current state x. The proposal is
// accepted iff z < exp(-|y|)/exp(-|x|); otherwise the state is repeated
// and the rejection counter is incremented. The result is a Chain, an
// N-row table holding the state and the cumulative number of rejections
// after every row. Row 0 holds the seed value and no rejections.
//
// Random draws come from an injected rng.Randomizer, so a chain is
// reproducible from its seed or fully scripted with a mock.
package metropolis
