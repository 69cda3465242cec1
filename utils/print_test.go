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
	"bytes"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrinter_NewPrinter(t *testing.T) {
	p := NewPrinters()
	assert.NotNil(t, p)
	assert.Equal(t, 0, p.Len())
}

func TestPrinter_AddPrinter(t *testing.T) {
	p := &Printers{[]Printer{}}
	p1 := &PrinterToWriter{}
	p2 := &PrinterToWriter{}

	p.AddPrinter(p1)
	p.AddPrinter(p2)

	assert.Equal(t, 2, len(p.printers))
}

func TestPrinter_Print(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrinter := NewMockPrinter(ctrl)
	p := &Printers{[]Printer{
		mockPrinter,
	}}
	mockPrinter.EXPECT().Print().Return(nil).Times(1)
	assert.NoError(t, p.Print())
}

func TestPrinter_PrintJoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := NewMockPrinter(ctrl)
	second := NewMockPrinter(ctrl)
	third := NewMockPrinter(ctrl)
	errFirst := errors.New("first")
	errThird := errors.New("third")
	gomock.InOrder(
		first.EXPECT().Print().Return(errFirst),
		second.EXPECT().Print().Return(nil),
		third.EXPECT().Print().Return(errThird),
	)
	p := NewPrinters().AddPrinter(first).AddPrinter(second).AddPrinter(third)
	err := p.Print()
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
}

func TestPrinter_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrinter := NewMockPrinter(ctrl)
	p := &Printers{[]Printer{
		mockPrinter,
	}}
	mockPrinter.EXPECT().Close().Return().Times(1)
	assert.NotPanics(t, p.Close)
}

func TestPrinters_AddPrinterToWriter(t *testing.T) {
	p := &Printers{}
	p.AddPrinterToWriter(os.Stdout, func() string {
		return "Hello, World!"
	})
	assert.Equal(t, 1, len(p.printers))
}

func TestPrinters_AddPrinterToConsole(t *testing.T) {
	p := &Printers{}
	p.AddPrinterToConsole(false, func() string {
		return "Hello, World!"
	})
	assert.Equal(t, 1, len(p.printers))

	p = &Printers{}
	p.AddPrinterToConsole(true, func() string {
		return "Hello, World!"
	})
	assert.Equal(t, 0, len(p.printers))
}

func TestPrinters_AddPrinterToFile(t *testing.T) {
	p := &Printers{}
	p.AddPrinterToFile("test.txt", func() string {
		return "Hello, World!"
	})
	assert.Equal(t, 1, len(p.printers))

	p = &Printers{}
	p.AddPrinterToFile("", func() string {
		return "Hello, World!"
	})
	assert.Equal(t, 0, len(p.printers))
}

func TestPrinters_AddPrinterToSqlite3(t *testing.T) {
	p := &Printers{}
	_, err := p.AddPrinterToSqlite3(":memory:", ChainTableCreate, ChainTableInsert, func() [][]any {
		return [][]any{}
	})
	require.NoError(t, err)
	assert.Equal(t, 1, len(p.printers))
	p.Close()

	p = &Printers{}
	_, err = p.AddPrinterToSqlite3("", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, len(p.printers))

	_, err = p.AddPrinterToSqlite3(":memory:", "asfd;asdf", "", nil)
	assert.Error(t, err)
	assert.Equal(t, 0, len(p.printers))
}

func TestPrinterToWriter_Print(t *testing.T) {
	var buf bytes.Buffer
	p := &PrinterToWriter{
		w: &buf,
		f: func() string {
			return "Hello, World!"
		},
	}
	err := p.Print()
	assert.NoError(t, err)
	assert.Equal(t, "Hello, World!\n", buf.String())
}

func TestPrinterToWriter_Close(t *testing.T) {
	p := &PrinterToWriter{}
	assert.NotPanics(t, p.Close)
}

func TestPrinterToWriter_NewPrinterToConsole(t *testing.T) {
	p := NewPrinterToConsole(func() string {
		return "Hello, World!"
	})
	assert.NotNil(t, p)
	assert.Equal(t, reflect.ValueOf(os.Stdout).Pointer(), reflect.ValueOf(p.w).Pointer())
	assert.NotNil(t, p.f)
}

func TestPrinterToFile_Print(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "test.txt")
	p := NewPrinterToFile(filePath, func() string {
		return "Hello, World!\n"
	})
	assert.False(t, p.Compressed())
	require.NoError(t, p.Print())
	require.NoError(t, p.Print())

	content, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!\nHello, World!\n", string(content))
}

func TestPrinterToFile_PrintCompressed(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "chain.csv.gz")
	p := NewPrinterToFile(filePath, func() string {
		return ChainCSV([][2]float64{{25, 0}, {24.5, 0}, {24.5, 1}})
	})
	assert.True(t, p.Compressed())
	require.NoError(t, p.Print())

	file, err := os.Open(filePath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, file.Close())
	}()
	reader, err := gzip.NewReader(file)
	require.NoError(t, err)
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "x,rejections\n25,0\n24.5,0\n24.5,1\n", string(content))
}

func TestPrinterToFile_PrintFailsForDirectory(t *testing.T) {
	p := NewPrinterToFile(t.TempDir(), func() string {
		return "Hello, World!"
	})
	assert.Error(t, p.Print())
}

func TestPrinterToFile_Close(t *testing.T) {
	p := NewPrinterToFile(filepath.Join(t.TempDir(), "test.txt"), func() string {
		return "Hello, World!"
	})
	assert.NotPanics(t, p.Close)
}

func newMockDb(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mockDb, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	return db, mockDb
}

func TestPrinterToDb_Print(t *testing.T) {
	db, mockDb := newMockDb(t)
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	rows := [][2]float64{{25, 0}, {24.9, 0}}
	p := &PrinterToDb{
		db:     db,
		insert: ChainTableInsert,
		f: func() [][]any {
			return ChainRecords(rows)
		},
	}

	// case success
	mockDb.ExpectBegin()
	prep := mockDb.ExpectPrepare(ChainTableInsert).WillBeClosed()
	prep.ExpectExec().WithArgs(0, 25.0, int64(0)).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(1, 24.9, int64(0)).WillReturnResult(sqlmock.NewResult(1, 1))
	mockDb.ExpectCommit()
	assert.NoError(t, p.Print())

	// case Begin error
	mockErr := errors.New("mock error")
	mockDb.ExpectBegin().WillReturnError(mockErr)
	assert.Error(t, p.Print())

	// case Prepare error
	mockDb.ExpectBegin()
	mockDb.ExpectPrepare(ChainTableInsert).WillReturnError(mockErr)
	mockDb.ExpectRollback()
	assert.Error(t, p.Print())

	// case Exec error
	mockDb.ExpectBegin()
	prep = mockDb.ExpectPrepare(ChainTableInsert).WillBeClosed()
	prep.ExpectExec().WithArgs(0, 25.0, int64(0)).WillReturnError(mockErr)
	mockDb.ExpectRollback()
	err := p.Print()
	assert.ErrorIs(t, err, mockErr)

	// case Commit error
	mockDb.ExpectBegin()
	prep = mockDb.ExpectPrepare(ChainTableInsert).WillBeClosed()
	prep.ExpectExec().WithArgs(0, 25.0, int64(0)).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(1, 24.9, int64(0)).WillReturnResult(sqlmock.NewResult(1, 1))
	mockDb.ExpectCommit().WillReturnError(mockErr)
	assert.Error(t, p.Print())

	if err = mockDb.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestPrinterToDb_Close(t *testing.T) {
	db, mockDb := newMockDb(t)

	p := &PrinterToDb{
		db:     db,
		insert: "",
		f:      nil,
	}
	mockDb.ExpectClose()
	p.Close()
	if err := mockDb.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestPrinterToDb_NewPrinterToSqlite3(t *testing.T) {
	// case success
	db, err := NewPrinterToSqlite3(":memory:", ChainTableCreate, ChainTableInsert, func() [][]any {
		return [][]any{}
	})
	assert.NoError(t, err)
	assert.NotNil(t, db)
	db.Close()

	// case error
	db, err = NewPrinterToSqlite3(":memory:", "asfd;asdf", "", func() [][]any {
		return [][]any{}
	})
	assert.Error(t, err)
	assert.Nil(t, db)
}
