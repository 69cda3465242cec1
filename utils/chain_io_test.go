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

package utils

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainCSV(t *testing.T) {
	out := ChainCSV([][2]float64{{25, 0}, {24.951, 0}, {24.951, 1}, {-0.125, 1}})
	assert.Equal(t, "x,rejections\n25,0\n24.951,0\n24.951,1\n-0.125,1\n", out)
	assert.Equal(t, "x,rejections\n", ChainCSV(nil))
}

func TestChainRecords(t *testing.T) {
	records := ChainRecords([][2]float64{{1.5, 0}, {1.5, 1}})
	assert.Equal(t, [][]any{{0, 1.5, int64(0)}, {1, 1.5, int64(1)}}, records)
}

func TestChainTable_RoundTrip(t *testing.T) {
	conn := filepath.Join(t.TempDir(), "chain.db")
	rows := [][2]float64{{25, 0}, {24.96, 0}, {24.96, 1}, {24.9, 1}}

	p, err := NewPrinterToSqlite3(conn, ChainTableCreate, ChainTableInsert, func() [][]any {
		return ChainRecords(rows)
	})
	require.NoError(t, err)
	require.NoError(t, p.Print())
	p.Close()

	loaded, err := LoadChainRows(conn)
	require.NoError(t, err)
	assert.Equal(t, rows, loaded)

	// a second export replaces the table
	rows = rows[:2]
	p, err = NewPrinterToSqlite3(conn, ChainTableCreate, ChainTableInsert, func() [][]any {
		return ChainRecords(rows)
	})
	require.NoError(t, err)
	require.NoError(t, p.Print())
	p.Close()

	loaded, err = LoadChainRows(conn)
	require.NoError(t, err)
	assert.Equal(t, rows, loaded)
}

func TestLoadChainRows_Errors(t *testing.T) {
	dir := t.TempDir()

	// no chain table
	conn := filepath.Join(dir, "other.db")
	other, err := sql.Open("sqlite3", conn)
	require.NoError(t, err)
	_, err = other.Exec("CREATE TABLE other (id INTEGER)")
	require.NoError(t, err)
	require.NoError(t, other.Close())
	_, err = LoadChainRows(conn)
	assert.ErrorContains(t, err, "no such table")

	// empty chain table
	conn = filepath.Join(dir, "empty.db")
	db, err := sql.Open("sqlite3", conn)
	require.NoError(t, err)
	_, err = db.Exec(ChainTableCreate)
	require.NoError(t, err)
	_, err = LoadChainRows(conn)
	assert.ErrorContains(t, err, "empty")

	// gap in the row indices
	_, err = db.Exec(ChainTableInsert, 0, 1.0, 0)
	require.NoError(t, err)
	_, err = db.Exec(ChainTableInsert, 2, 1.0, 1)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	_, err = LoadChainRows(conn)
	assert.ErrorContains(t, err, "misses row 1")
}

func TestLoadChainRows_MissingDatabaseIsNotCreated(t *testing.T) {
	conn := filepath.Join(t.TempDir(), "typo.db")

	_, err := LoadChainRows(conn)
	assert.ErrorContains(t, err, "does not exist")

	_, err = os.Stat(conn)
	assert.True(t, errors.Is(err, os.ErrNotExist), "loading created %v", conn)
}

func TestLoadChainRows_DoesNotModifyDatabase(t *testing.T) {
	conn := filepath.Join(t.TempDir(), "chain.db")
	rows := [][2]float64{{1, 0}, {1, 1}}
	p, err := NewPrinterToSqlite3(conn, ChainTableCreate, ChainTableInsert, func() [][]any { return ChainRecords(rows) })
	require.NoError(t, err)
	require.NoError(t, p.Print())
	p.Close()
	before, err := os.Stat(conn)
	require.NoError(t, err)

	loaded, err := LoadChainRows(conn)
	require.NoError(t, err)
	assert.Equal(t, rows, loaded)

	after, err := os.Stat(conn)
	require.NoError(t, err)
	assert.Equal(t, before.Size(), after.Size())
	assert.Equal(t, before.ModTime(), after.ModTime())
}
