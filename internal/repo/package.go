package repo

import (
	"context"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	packageTable     = "packages"
	packageFlagTable = "package_flags"
	packageDiffTable = "package_diffs"
)

type packageRow struct {
	ID          int64     `db:"id"`
	PackageHash string    `db:"package_hash"`
	Label       string    `db:"label"`
	AppVersion  string    `db:"app_version"`
	Description string    `db:"description"`
	IsMandatory bool      `db:"is_mandatory"`
	Size        int64     `db:"size"`
	BlobKey     string    `db:"blob_key"`
	Tags        []byte    `db:"tags"`
	UploadTime  time.Time `db:"upload_time"`
}

type flagRow struct {
	PackageID  int64 `db:"package_id"`
	IsDisabled bool  `db:"is_disabled"`
	Rollout    int   `db:"rollout"`
}

type diffRow struct {
	PackageID         int64  `db:"package_id"`
	SourcePackageHash string `db:"source_package_hash"`
	PackageHash       string `db:"package_hash"`
	BlobKey           string `db:"blob_key"`
	Size              int64  `db:"size"`
}

type Package struct {
	*Repo
}

func NewPackage(db *Repo) *Package {
	return &Package{
		Repo: db,
	}
}

func packagesQuery(deploymentID int64) *entsql.Selector {
	return entsql.Dialect(dialect.MySQL).
		Select("id", "package_hash", "label", "app_version", "description",
			"is_mandatory", "size", "blob_key", "tags", "upload_time").
		From(entsql.Table(packageTable)).
		Where(entsql.EQ("deployment_id", deploymentID)).
		OrderBy(entsql.Asc("id"))
}

func flagsQuery(ids []any) *entsql.Selector {
	return entsql.Dialect(dialect.MySQL).
		Select("package_id", "is_disabled", "rollout").
		From(entsql.Table(packageFlagTable)).
		Where(entsql.In("package_id", ids...))
}

func diffsQuery(ids []any) *entsql.Selector {
	return entsql.Dialect(dialect.MySQL).
		Select("package_id", "source_package_hash", "package_hash", "blob_key", "size").
		From(entsql.Table(packageDiffTable)).
		Where(entsql.In("package_id", ids...))
}

// PackageHistory loads the whole package log of a deployment in upload order.
// Flags and diffs are fetched concurrently once the package ids are known.
func (r *Package) PackageHistory(ctx context.Context, d *model.Deployment) (*model.History, error) {
	var rows []packageRow
	if err := r.selectContext(ctx, &rows, "PackageHistory", packagesQuery(d.ID)); err != nil {
		return nil, errors.WithMessagef(err, "failed to load packages of deployment %s", d.Key)
	}
	if len(rows) == 0 {
		return model.NewHistory(nil, nil), nil
	}

	ids := make([]any, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var (
		flags []flagRow
		diffs []diffRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.selectContext(gctx, &flags, "PackageFlags", flagsQuery(ids))
	})
	g.Go(func() error {
		return r.selectContext(gctx, &diffs, "PackageDiffs", diffsQuery(ids))
	})
	if err := g.Wait(); err != nil {
		return nil, errors.WithMessagef(err, "failed to load package details of deployment %s", d.Key)
	}

	return buildHistory(rows, flags, diffs)
}

func buildHistory(rows []packageRow, flags []flagRow, diffs []diffRow) (*model.History, error) {
	byPackage := make(map[int64]map[string]model.DiffPackage)
	for _, d := range diffs {
		m, ok := byPackage[d.PackageID]
		if !ok {
			m = make(map[string]model.DiffPackage)
			byPackage[d.PackageID] = m
		}
		m[d.SourcePackageHash] = model.DiffPackage{
			PackageHash: d.PackageHash,
			BlobKey:     d.BlobKey,
			Size:        d.Size,
		}
	}

	packages := make([]model.Package, 0, len(rows))
	for _, row := range rows {
		tags, err := decodeTags(row.Tags)
		if err != nil {
			return nil, errors.WithMessagef(err, "invalid tags of package %d", row.ID)
		}
		packages = append(packages, model.Package{
			ID:             row.ID,
			PackageHash:    row.PackageHash,
			Label:          row.Label,
			AppVersion:     row.AppVersion,
			Description:    row.Description,
			IsMandatory:    row.IsMandatory,
			Size:           row.Size,
			BlobKey:        row.BlobKey,
			Tags:           tags,
			DiffPackageMap: byPackage[row.ID],
			UploadTime:     row.UploadTime,
		})
	}

	flagMap := make(map[int64]model.PackageFlags, len(flags))
	for _, f := range flags {
		flagMap[f.PackageID] = model.PackageFlags{
			IsDisabled: f.IsDisabled,
			Rollout:    f.Rollout,
		}
	}

	return model.NewHistory(packages, flagMap), nil
}

func decodeTags(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var tags []string
	if err := sonic.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
