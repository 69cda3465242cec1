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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	_ "github.com/mattn/go-sqlite3"
)

// Printer is a utility class to output data from the system
//
//go:generate mockgen -source print.go -destination print_mock.go -package utils
type Printer interface {
	Print() error
	Close()
}

type Printers struct {
	printers []Printer
}

// Print runs all printers and returns the joined errors of the failing ones.
func (ps *Printers) Print() error {
	var errs error
	for _, p := range ps.printers {
		if err := p.Print(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

func (ps *Printers) Close() {
	for _, p := range ps.printers {
		p.Close()
	}
}

func NewPrinters() *Printers {
	return &Printers{[]Printer{}}
}

func (ps *Printers) AddPrinter(p Printer) *Printers {
	ps.printers = append(ps.printers, p)
	return ps
}

// Len returns the number of registered printers.
func (ps *Printers) Len() int {
	return len(ps.printers)
}

// PrinterToWriter writes to any io.Writer
// Wrap f, returns a string to be printed
type PrinterToWriter struct {
	w io.Writer
	f func() string
}

func (p *PrinterToWriter) Print() error {
	_, err := fmt.Fprintln(p.w, p.f())
	if err != nil {
		return err
	}
	return nil
}

func (p *PrinterToWriter) Close() {

}

func NewPrinterToWriter(w io.Writer, f func() string) *PrinterToWriter {
	return &PrinterToWriter{w, f}
}

func NewPrinterToConsole(f func() string) *PrinterToWriter {
	return &PrinterToWriter{os.Stdout, f}
}

func (ps *Printers) AddPrinterToWriter(w io.Writer, f func() string) *Printers {
	return ps.AddPrinter(NewPrinterToWriter(w, f))
}

func (ps *Printers) AddPrinterToConsole(isDisabled bool, f func() string) *Printers {
	if isDisabled {
		return ps
	}
	return ps.AddPrinter(NewPrinterToConsole(f))
}

// PrinterToFile appends to a file; files ending in ".gz" receive a gzip member per Print.
// Wrap f, returns a string to be printed
type PrinterToFile struct {
	filepath string
	f        func() string
}

func (p *PrinterToFile) Print() (err error) {
	file, err := os.OpenFile(p.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("unable to print to file %s; %v", p.filepath, err)
	}

	defer func(file *os.File) {
		e := file.Close()
		if e != nil {
			err = errors.Join(err, e)
		}
	}(file)

	if !p.Compressed() {
		_, err = file.WriteString(p.f())
		return err
	}

	gzipWriter := gzip.NewWriter(file)
	if _, err = gzipWriter.Write([]byte(p.f())); err != nil {
		return errors.Join(fmt.Errorf("unable to compress into file %s; %w", p.filepath, err), gzipWriter.Close())
	}
	return gzipWriter.Close()
}

// Compressed reports whether the file is written gzip compressed.
func (p *PrinterToFile) Compressed() bool {
	return strings.HasSuffix(p.filepath, ".gz")
}

func (p *PrinterToFile) Close() {

}

func NewPrinterToFile(filepath string, f func() string) *PrinterToFile {
	return &PrinterToFile{filepath, f}
}

func (ps *Printers) AddPrinterToFile(filepath string, f func() string) *Printers {
	if filepath != "" {
		ps.AddPrinter(NewPrinterToFile(filepath, f))
	}
	return ps
}

// PrinterToDb writes by inserting rows into DB
// Wrap f, returns an array of values to be inserted
type PrinterToDb struct {
	db     *sql.DB
	insert string
	f      func() [][]any
}

func (p *PrinterToDb) Print() (err error) {
	// Transaction is used to improve efficiency over bulk insert
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("unable to begin a transaction; %v", err)
	}

	stmt, err := tx.Prepare(p.insert)
	if err != nil {
		return errors.Join(fmt.Errorf("unable to prepare statement %s; %v", p.insert, err), tx.Rollback())
	}

	for _, value := range p.f() {
		if _, err = stmt.Exec(value...); err != nil {
			return errors.Join(err, stmt.Close(), tx.Rollback())
		}
	}

	if err = stmt.Close(); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

func (p *PrinterToDb) Close() {
	err := p.db.Close()
	if err != nil {
		panic(err)
	}
}

func NewPrinterToSqlite3(conn string, create string, insert string, f func() [][]any) (*PrinterToDb, error) {
	var err error

	db, err := sql.Open("sqlite3", conn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection to sqlite3 %s; %v", conn, err)
	}
	// a single connection keeps ":memory:" databases alive across statements
	db.SetMaxOpenConns(1)

	_, err = db.Exec(create)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create/replace table on %s; %v", conn, err), db.Close())
	}

	_, err = db.Exec("PRAGMA synchronous = OFF")
	if err != nil {
		return nil, errors.Join(err, db.Close())
	} // so that insert does not block
	_, err = db.Exec("PRAGMA journal_mode = MEMORY")
	if err != nil {
		return nil, errors.Join(err, db.Close())
	} // improve efficiency - no intermediate write to file

	return &PrinterToDb{db, insert, f}, nil
}

// AddPrinterToSqlite3 registers a database printer; conn == "" leaves the printers unchanged.
func (ps *Printers) AddPrinterToSqlite3(conn string, create string, insert string, f func() [][]any) (*Printers, error) {
	if conn == "" {
		return ps, nil
	}
	p, err := NewPrinterToSqlite3(conn, create, insert, f)
	if err != nil {
		return ps, err
	}
	return ps.AddPrinter(p), nil
}
