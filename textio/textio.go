// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlinalg/matrix"
)

var (
	// ErrEmptyInput reports input without a single non-blank line.
	ErrEmptyInput = errors.New("textio: empty input")

	// ErrParse reports a token that does not parse as the element type.
	ErrParse = errors.New("textio: parse error")

	// ErrRaggedRows reports rows with differing element counts.
	ErrRaggedRows = errors.New("textio: ragged rows")
)

const (
	opWrite = "Write"
	opRead  = "Read"
	opSave  = "Save"
	opLoad  = "Load"

	fieldSep   = "\t"
	maxLineLen = 16 << 20
)

func textioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Write emits m as tab-separated rows, one per line.
func Write[T any](w io.Writer, m *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return textioErrorf(opWrite, err)
	}

	bw := bufio.NewWriter(w)
	for _, row := range m.RowsSeq() {
		for j, v := range row {
			if j > 0 {
				bw.WriteString(fieldSep)
			}
			fmt.Fprintf(bw, "%v", v)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return textioErrorf(opWrite, err)
	}

	return nil
}

// parser converts one token into T according to T's kind and bit size.
type parser[T matrix.Scalar] func(tok string) (T, error)

func newParser[T matrix.Scalar]() parser[T] {
	typ := reflect.TypeFor[T]()
	bits := typ.Bits()

	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		return func(tok string) (T, error) {
			v, err := strconv.ParseFloat(tok, bits)
			return T(v), err
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(tok string) (T, error) {
			v, err := strconv.ParseInt(tok, 10, bits)
			return T(v), err
		}
	default: // unsigned kinds, including uintptr
		return func(tok string) (T, error) {
			v, err := strconv.ParseUint(tok, 10, bits)
			return T(v), err
		}
	}
}

// Read parses whitespace-separated rows into a matrix of T.
// Blank lines are skipped; line and field numbers in errors are 1-based.
//
// Errors:
//   - ErrEmptyInput when no row is found.
//   - ErrParse when a token is not a valid T (wrapping the strconv error).
//   - ErrRaggedRows when a row's length differs from the first row's.
func Read[T matrix.Scalar](r io.Reader) (*matrix.Dense[T], error) {
	parse := newParser[T]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	var (
		buf        []T
		rows, cols int
		line       int
		fields     []string
	)
	for sc.Scan() {
		line++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, textioErrorf(opRead,
				fmt.Errorf("line %d has %d fields, want %d: %w", line, len(fields), cols, ErrRaggedRows))
		}
		for j, tok := range fields {
			v, err := parse(tok)
			if err != nil {
				return nil, textioErrorf(opRead, fmt.Errorf("line %d, field %d: %w: %w", line, j+1, ErrParse, err))
			}
			buf = append(buf, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, textioErrorf(opRead, err)
	}
	if rows == 0 {
		return nil, textioErrorf(opRead, ErrEmptyInput)
	}

	return matrix.New(buf, rows, cols), nil
}

// Save writes m to path (created or truncated) in the Write format.
func Save[T any](path string, m *matrix.Dense[T]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return textioErrorf(opSave, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = textioErrorf(opSave, cerr)
		}
	}()

	if err = Write(f, m); err != nil {
		return textioErrorf(opSave, err)
	}

	return nil
}

// Load reads a matrix of T from path.
func Load[T matrix.Scalar](path string) (*matrix.Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, textioErrorf(opLoad, err)
	}
	defer f.Close()

	m, err := Read[T](f)
	if err != nil {
		return nil, textioErrorf(opLoad, fmt.Errorf("%s: %w", path, err))
	}

	return m, nil
}

// LoadFloat is Load[float64].
func LoadFloat(path string) (*matrix.Dense[float64], error) { return Load[float64](path) }

// LoadInt is Load[int].
func LoadInt(path string) (*matrix.Dense[int], error) { return Load[int](path) }
