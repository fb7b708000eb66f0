package db

import (
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
)

const DriverName = "mysql"

func NewDataSource(conf *config.Config) (*entsql.Driver, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=True",
		conf.Database.Username,
		conf.Database.Password,
		conf.Database.Host,
		conf.Database.Port,
		conf.Database.Name,
	)
	return entsql.Open(DriverName, dsn)
}

func NewSqlx(drv *entsql.Driver) *sqlx.DB {
	return sqlx.NewDb(drv.DB(), DriverName)
}
