package utils

import (
	"database/sql"
	"fmt"
	"net"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"syllabus-tracker/backend/config"
)

// InitDB opens the configured SQL database. The memory driver needs no
// database and returns nil.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch cfg.DBDriver {
	case "", "memory":
		return nil, nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		return db, errors.Wrap(err, "open postgres")
	case "mysql":
		mc := gomysql.NewConfig()
		mc.User = cfg.DBUser
		mc.Passwd = cfg.DBPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
		mc.DBName = cfg.DBName
		mc.ParseTime = true

		connector, err := gomysql.NewConnector(mc)
		if err != nil {
			return nil, errors.Wrap(err, "create mysql connector")
		}
		sqlDB := sql.OpenDB(connector)
		if err := sqlDB.Ping(); err != nil {
			return nil, errors.Wrap(err, "ping mysql")
		}
		db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), gormCfg)
		return db, errors.Wrap(err, "open mysql")
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}
