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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// SQL statements of the chain table.
const (
	ChainTableCreate = `DROP TABLE IF EXISTS chain;
CREATE TABLE chain (
	idx        INTEGER PRIMARY KEY,
	x          REAL    NOT NULL,
	rejections INTEGER NOT NULL
);`
	ChainTableInsert = "INSERT INTO chain (idx, x, rejections) VALUES (?, ?, ?)"
	chainTableSelect = "SELECT idx, x, rejections FROM chain ORDER BY idx"
)

// ChainCSVHeader is the first line of an exported chain.
const ChainCSVHeader = "x,rejections"

// ChainCSV formats chain rows as CSV with a header line.
func ChainCSV(rows [][2]float64) string {
	var sb strings.Builder
	sb.WriteString(ChainCSVHeader)
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(strconv.FormatFloat(row[0], 'g', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatInt(int64(row[1]), 10))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ChainRecords converts chain rows into insert arguments for ChainTableInsert.
func ChainRecords(rows [][2]float64) [][]any {
	records := make([][]any, len(rows))
	for i, row := range rows {
		records[i] = []any{i, row[0], int64(row[1])}
	}
	return records
}

type chainRecord struct {
	Idx        int64   `db:"idx"`
	X          float64 `db:"x"`
	Rejections int64   `db:"rejections"`
}

// LoadChainRows reads the chain table of an existing sqlite3 database.
// The database is opened read-only.
func LoadChainRows(conn string) (rows [][2]float64, err error) {
	if _, err := os.Stat(conn); err != nil {
		return nil, fmt.Errorf("sqlite3 database %s does not exist; %w", conn, err)
	}
	db, err := sqlx.Open("sqlite3", "file:"+conn+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open connection to sqlite3 %s; %v", conn, err)
	}
	defer func() {
		if e := db.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return selectChainRows(db)
}

func selectChainRows(db *sqlx.DB) ([][2]float64, error) {
	var records []chainRecord
	if err := db.Select(&records, chainTableSelect); err != nil {
		return nil, fmt.Errorf("failed to read chain table; %v", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("chain table is empty")
	}
	rows := make([][2]float64, len(records))
	for i, r := range records {
		if r.Idx != int64(i) {
			return nil, fmt.Errorf("chain table misses row %v", i)
		}
		rows[i] = [2]float64{r.X, float64(r.Rejections)}
	}
	return rows, nil
}
