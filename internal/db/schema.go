package db

import (
	"context"
	_ "embed"
	"strings"

	"entgo.io/ent/dialect"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schema string

// Statements splits the bundled schema into single statements.
func Statements() []string {
	var stmts []string
	for _, s := range strings.Split(schema, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// EnsureSchema creates the tables read by the update check when missing.
func EnsureSchema(ctx context.Context, drv dialect.ExecQuerier) error {
	for _, stmt := range Statements() {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return errors.WithMessage(err, "failed to create schema")
		}
	}
	return nil
}
