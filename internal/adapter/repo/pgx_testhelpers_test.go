package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// simpleRow adapts a scan func to pgx.Row.
type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// sliceRows serves pre-built row scanners as pgx.Rows.
type sliceRows struct {
	rows []func(dest ...any) error
	idx  int
	err  error
}

func (r *sliceRows) Close()                                       {}
func (r *sliceRows) Err() error                                   { return r.err }
func (r *sliceRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *sliceRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *sliceRows) Conn() *pgx.Conn                              { return nil }
func (r *sliceRows) RawValues() [][]byte                          { return nil }

func (r *sliceRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (r *sliceRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *sliceRows) Scan(dest ...any) error {
	return r.rows[r.idx-1](dest...)
}

// fakeExecutor is an in-memory infra.SQLExecutor matching queries by
// substring, enough to exercise the repositories without a database.
type fakeExecutor struct {
	execs    []string
	onExec   func(query string, args []any) error
	onRow    func(query string, args []any) simpleRow
	onQuery  func(query string, args []any) (*sliceRows, error)
	lastArgs []any
}

func (f *fakeExecutor) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, query)
	f.lastArgs = args
	if f.onExec != nil {
		if err := f.onExec(query, args); err != nil {
			return pgconn.CommandTag{}, err
		}
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeExecutor) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if f.onRow == nil {
		return simpleRow{}
	}
	return f.onRow(query, args)
}

func (f *fakeExecutor) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if f.onQuery == nil {
		return &sliceRows{}, nil
	}
	return f.onQuery(query, args)
}

func setDest(dest []any, values ...any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan destination count %d, want %d", len(dest), len(values))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *int:
			d2, ok := v.(int)
			if !ok {
				return fmt.Errorf("dest %d: want int, have %T", i, v)
			}
			*d = d2
		case *int64:
			d2, ok := v.(int64)
			if !ok {
				return fmt.Errorf("dest %d: want int64, have %T", i, v)
			}
			*d = d2
		case *string:
			d2, ok := v.(string)
			if !ok {
				return fmt.Errorf("dest %d: want string, have %T", i, v)
			}
			*d = d2
		case *bool:
			d2, ok := v.(bool)
			if !ok {
				return fmt.Errorf("dest %d: want bool, have %T", i, v)
			}
			*d = d2
		default:
			// Pointers to nullable fields and times are assigned reflectively
			// through the concrete cases the tests use; anything else is a
			// helper bug.
			if err := assignAny(dest[i], v); err != nil {
				return fmt.Errorf("dest %d: %w", i, err)
			}
		}
	}
	return nil
}

func assignAny(dest, v any) error {
	switch d := dest.(type) {
	case **string:
		if v == nil {
			*d = nil
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("want string, have %T", v)
		}
		*d = &s
	case **int64:
		if v == nil {
			*d = nil
			return nil
		}
		n, ok := v.(int64)
		if !ok {
			return fmt.Errorf("want int64, have %T", v)
		}
		*d = &n
	case *time.Time:
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("want time.Time, have %T", v)
		}
		*d = t
	case **time.Time:
		if v == nil {
			*d = nil
			return nil
		}
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("want time.Time, have %T", v)
		}
		*d = &t
	default:
		return fmt.Errorf("unsupported scan destination %T", dest)
	}
	return nil
}

func queryIs(query, fragment string) bool {
	return strings.Contains(query, fragment)
}
