package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/modelward-dev/modelward/monitoring"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// alertLogger forwards anything gorm considers an error to the alerting hook
type alertLogger struct {
	defaultLogger logger.Interface
}

func (a *alertLogger) LogMode(level logger.LogLevel) logger.Interface {
	var newDefault logger.Interface
	if a.defaultLogger != nil {
		newDefault = a.defaultLogger.LogMode(level)
	}
	return &alertLogger{defaultLogger: newDefault}
}

func (a *alertLogger) Info(ctx context.Context, msg string, data ...any) {
	a.alert(msg, data...)
	a.defaultLogger.Info(ctx, msg, data...)
}

func (a *alertLogger) Warn(ctx context.Context, msg string, data ...any) {
	a.alert(msg, data...)
	a.defaultLogger.Warn(ctx, msg, data...)
}

func (a *alertLogger) Error(ctx context.Context, msg string, data ...any) {
	a.alert(msg, data...)
	a.defaultLogger.Error(ctx, msg, data...)
}

func (a *alertLogger) alert(msg string, data ...any) {
	if len(data) > 0 {
		err, ok := data[0].(error)
		if ok {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return
			}
			monitoring.Alert(msg, err)
		} else {
			monitoring.Alert(msg, fmt.Errorf("%v", data[0]))
		}
	} else {
		monitoring.Alert(msg, nil)
	}
}

func (a *alertLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		a.alert("Database error", err)
	}
	a.defaultLogger.Trace(ctx, begin, fc, err)
}

func getDSN(host, user, password, dbname, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

func NewPgxConnPool(cfg PoolConfig) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(getDSN(cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port))
	if err != nil {
		panic("could not parse pgx pool config")
	}
	config.MaxConnIdleTime = cfg.ConnMaxIdleTime
	config.MaxConnLifetime = cfg.ConnMaxLifetime
	config.MaxConns = cfg.MaxOpenConns
	config.MinConns = cfg.MinConns

	ctx := context.Background()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		panic(fmt.Sprintf("could not create pgx pool: %s", err))
	}

	slog.Info("Database connection pool configured",
		"maxOpenConns", cfg.MaxOpenConns,
		"connMaxLifetime", cfg.ConnMaxLifetime,
		"connMaxIdleTime", cfg.ConnMaxIdleTime,
	)

	return pool
}

// NewGormDB creates a GORM instance using an existing *pgxpool.Pool
func NewGormDB(existingPool *pgxpool.Pool) *gorm.DB {
	db := stdlib.OpenDBFromPool(existingPool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: &alertLogger{
			defaultLogger: logger.Default,
		},
	})

	if err != nil {
		panic(err)
	}

	return gormDB
}

func NewConnection(host, user, password, dbname, port string) (*gorm.DB, error) {
	cfg := GetPoolConfigFromEnv()
	cfg.Host = host
	cfg.User = user
	cfg.Password = password
	cfg.DBName = dbname
	cfg.Port = port

	return NewGormDB(NewPgxConnPool(cfg)), nil
}

func IsDuplicateKeyError(err error) bool {
	return strings.HasPrefix(err.Error(), "ERROR: duplicate key value violates unique constraint")
}
