package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestBackoffNextDelay(t *testing.T) {
	b := backoff{maxRetries: 5, delay: 500 * time.Millisecond, maxDelay: 5 * time.Second}

	assert.Equal(t, 500*time.Millisecond, b.nextDelay(0))
	assert.Equal(t, time.Second, b.nextDelay(1))
	assert.Equal(t, 4*time.Second, b.nextDelay(3))
	assert.Equal(t, 5*time.Second, b.nextDelay(4))
}

func TestTraceLogsOnlySlowAndFailedAtWarn(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := zapGormLogger{zap: zap.New(core), level: gormlogger.Warn}
	sql := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	l.Trace(ctx, time.Now(), sql, nil)
	l.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	l.Trace(ctx, time.Now(), sql, errors.New("boom"))

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "slow query", entries[0].Message)
		assert.Equal(t, "query failed", entries[1].Message)
	}
}

func TestTraceLogsEverythingAtInfo(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := zapGormLogger{zap: zap.New(core)}.LogMode(gormlogger.Info)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Equal(t, 1, logs.FilterMessage("query").Len())
}
