package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/MirrorChyan/ota-backend/internal/model"
	pkgerrors "github.com/pkg/errors"
)

const deploymentTable = "deployments"

type deploymentRow struct {
	ID            int64     `db:"id"`
	AppID         int64     `db:"app_id"`
	Name          string    `db:"name"`
	DeploymentKey string    `db:"deployment_key"`
	CreatedAt     time.Time `db:"created_at"`
}

type Deployment struct {
	*Repo
}

func NewDeployment(db *Repo) *Deployment {
	return &Deployment{
		Repo: db,
	}
}

func deploymentByKeyQuery(key string) *entsql.Selector {
	return entsql.Dialect(dialect.MySQL).
		Select("id", "app_id", "name", "deployment_key", "created_at").
		From(entsql.Table(deploymentTable)).
		Where(entsql.EQ("deployment_key", key)).
		Limit(1)
}

// FindDeploymentByKey returns model.ErrRecordNotFound for an unknown key.
func (r *Deployment) FindDeploymentByKey(ctx context.Context, key string) (*model.Deployment, error) {
	var row deploymentRow
	err := r.getContext(ctx, &row, "FindDeploymentByKey", deploymentByKeyQuery(key))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, model.ErrRecordNotFound
	case err != nil:
		return nil, pkgerrors.WithMessagef(err, "failed to find deployment %s", key)
	}

	return &model.Deployment{
		ID:        row.ID,
		AppID:     row.AppID,
		Name:      row.Name,
		Key:       row.DeploymentKey,
		CreatedAt: row.CreatedAt,
	}, nil
}
