package repo

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repo struct {
	dx *sqlx.DB
}

func NewRepo(dx *sqlx.DB) *Repo {
	return &Repo{
		dx: dx,
	}
}

func (r *Repo) selectContext(ctx context.Context, dest any, name string, s *entsql.Selector) error {
	query, args := s.Query()
	logQuery(name, query, args)
	return r.dx.SelectContext(ctx, dest, query, args...)
}

func (r *Repo) getContext(ctx context.Context, dest any, name string, s *entsql.Selector) error {
	query, args := s.Query()
	logQuery(name, query, args)
	return r.dx.GetContext(ctx, dest, query, args...)
}

func logQuery(name, query string, args []any) {
	if config.GConfig == nil || !config.GConfig.Extra.SqlDebugMode {
		return
	}
	zap.L().Info(name,
		zap.String("query", query),
		zap.Any("args", args),
	)
}
