package main

import (
	"context"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

// history stores emitted matches in the lookups table. The zero value is
// disabled and records nothing.
type history struct {
	conn execer
	now  func() time.Time
}

// connectHistory connects to dsn. An empty dsn disables the history.
func connectHistory(ctx context.Context, dsn string) (*history, func(), error) {
	if dsn == "" {
		return &history{}, func() {}, nil
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}
	closeFn := func() { conn.Close(context.Background()) }
	return &history{conn: conn, now: time.Now}, closeFn, nil
}

func (h *history) enabled() bool {
	return h != nil && h.conn != nil
}

// record inserts one row per match, all sharing the same timestamp.
func (h *history) record(ctx context.Context, query string, matches []OUIRecord) error {
	if !h.enabled() {
		return nil
	}

	at := h.now()
	for _, m := range matches {
		id, err := uuid.NewV4()
		if err != nil {
			return errors.Wrap(err, "generating lookup id")
		}

		_, err = h.conn.Exec(ctx, `
			INSERT INTO lookups VALUES ($1, $2, $3, $4, $5)
		`, id.String(), at, query, m.MACPrefix, m.Vendor)
		if err != nil {
			return errors.Wrapf(err, "recording lookup of %s", query)
		}
	}
	return nil
}
