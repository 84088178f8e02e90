package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SlowQuery is the duration above which queries are logged at warn level.
const SlowQuery = 200 * time.Millisecond

// OpenPostgres connects to dsn, retrying while the server comes up, and pings
// it before returning. verbose logs every query at debug level.
func OpenPostgres(ctx context.Context, dsn string, verbose bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}
	gcfg := &gorm.Config{
		Logger:                 zapGormLogger{zap: logger.L().Named("gorm"), level: level},
		SkipDefaultTransaction: true,
	}

	b := backoff{maxRetries: 5, delay: 500 * time.Millisecond, maxDelay: 5 * time.Second}

	var db *gorm.DB
	for attempt := 0; ; attempt++ {
		var err error
		if db, err = gorm.Open(postgres.Open(dsn), gcfg); err == nil {
			break
		}
		if attempt >= b.maxRetries {
			return nil, fmt.Errorf("open postgres failed after retries: %w", err)
		}
		logger.L().Warn("postgres not reachable, retrying", zap.Int("attempt", attempt+1), zap.Error(err))
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("open postgres canceled: %w", ctx.Err())
		case <-time.After(b.nextDelay(attempt)):
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db db() error: %w", err)
	}
	// Two small tables; a handful of connections is plenty.
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// zapGormLogger routes gorm's logging through zap. At Info every query is
// logged; at Warn only slow and failed ones.
type zapGormLogger struct {
	zap   *zap.Logger
	level gormlogger.LogLevel
}

func (l zapGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	l.level = level
	return l
}

func (l zapGormLogger) Info(_ context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.zap.Sugar().Infof(s, args...)
	}
}

func (l zapGormLogger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.zap.Sugar().Warnf(s, args...)
	}
}

func (l zapGormLogger) Error(_ context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.zap.Sugar().Errorf(s, args...)
	}
}

func (l zapGormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	dur := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := dur > SlowQuery
	if !failed && !slow && l.level < gormlogger.Info {
		return
	}

	sql, rows := fc()
	fields := []zap.Field{zap.Duration("duration", dur), zap.Int64("rows", rows), zap.String("sql", sql)}
	switch {
	case failed && l.level >= gormlogger.Error:
		l.zap.Error("query failed", append(fields, zap.Error(err))...)
	case slow && l.level >= gormlogger.Warn:
		l.zap.Warn("slow query", fields...)
	case l.level >= gormlogger.Info:
		l.zap.Debug("query", fields...)
	}
}

type backoff struct {
	maxRetries int
	delay      time.Duration
	maxDelay   time.Duration
}

func (b backoff) nextDelay(attempt int) time.Duration {
	if d := b.delay << attempt; d < b.maxDelay {
		return d
	}
	return b.maxDelay
}
