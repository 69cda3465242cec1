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
	"github.com/cockroachdb/errors"
)

// ErrInvalidParameter is returned, wrapped with the offending parameter,
// when a sampler parameter violates its constraint.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalidParameter(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
