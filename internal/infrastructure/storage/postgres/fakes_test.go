package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeQuerier serves rows from memory; calls records every statement it receives.
type fakeQuerier struct {
	rows     [][]any
	tag      pgconn.CommandTag
	err      error
	scanErr  error
	calls    []string
	lastArgs []any
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, sql)
	f.lastArgs = args
	return f.tag, f.err
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, sql)
	f.lastArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{data: f.rows, idx: -1, err: f.scanErr}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, sql)
	f.lastArgs = args
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	if len(f.rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: f.rows[0]}
}

func (f *fakeQuerier) Ping(context.Context) error { return f.err }

type fakeConnector struct {
	q        *fakeQuerier
	err      error
	released int
}

func (c *fakeConnector) acquire(context.Context) (querier, func(), error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	return c.q, func() { c.released++ }, nil
}

func (c *fakeConnector) close() {}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	data [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.data[r.idx], dest)
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.idx], nil }

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *int:
			*d = v.(int)
		case *string:
			*d = v.(string)
		case **int:
			if v == nil {
				*d = nil
				continue
			}
			n := v.(int)
			*d = &n
		default:
			return errors.New("scan: unsupported target")
		}
	}
	return nil
}
