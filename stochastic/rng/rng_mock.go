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

// Package rng is a generated GoMock package.
package rng

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRandomizer is a mock of Randomizer interface.
type MockRandomizer struct {
	ctrl     *gomock.Controller
	recorder *MockRandomizerMockRecorder
	isgomock struct{}
}

// MockRandomizerMockRecorder is the mock recorder for MockRandomizer.
type MockRandomizerMockRecorder struct {
	mock *MockRandomizer
}

// NewMockRandomizer creates a new mock instance.
func NewMockRandomizer(ctrl *gomock.Controller) *MockRandomizer {
	mock := &MockRandomizer{ctrl: ctrl}
	mock.recorder = &MockRandomizerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRandomizer) EXPECT() *MockRandomizerMockRecorder {
	return m.recorder
}

// Normal mocks base method.
func (m *MockRandomizer) Normal(mean, sd float64) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Normal", mean, sd)
	ret0, _ := ret[0].(float64)
	return ret0
}

// Normal indicates an expected call of Normal.
func (mr *MockRandomizerMockRecorder) Normal(mean, sd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Normal", reflect.TypeOf((*MockRandomizer)(nil).Normal), mean, sd)
}

// Uniform mocks base method.
func (m *MockRandomizer) Uniform() float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Uniform")
	ret0, _ := ret[0].(float64)
	return ret0
}

// Uniform indicates an expected call of Uniform.
func (mr *MockRandomizerMockRecorder) Uniform() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Uniform", reflect.TypeOf((*MockRandomizer)(nil).Uniform))
}
