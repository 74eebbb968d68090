package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func fixedQuery(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failed query", err: sql.ErrConnDone, want: "GORM query failed"},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
		{name: "debug logs every query", debug: true, want: `"msg":"GORM query"`},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, want: ""},
		{name: "fast query is quiet", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newBufferLogger()
			gormLogger := newGormSlogLogger(base, tt.debug, 200*time.Millisecond)

			gormLogger.Trace(context.Background(), time.Now().Add(-tt.elapsed), fixedQuery("SELECT 1", 1), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := newBufferLogger()
	requestLogger, requestBuf := newBufferLogger()
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger.With(slog.String("request_id", "req-42")))

	gormLogger := newGormSlogLogger(base, false, 10*time.Millisecond)
	gormLogger.Trace(ctx, time.Now().Add(-time.Second), fixedQuery("SELECT * FROM products", 3), nil)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, requestBuf.String(), `"request_id":"req-42"`)
	assert.Contains(t, requestBuf.String(), "GORM slow query")
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	base, buf := newBufferLogger()
	gormLogger := newGormSlogLogger(base, true, time.Millisecond).LogMode(logger.Silent)

	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), fixedQuery("SELECT 1", 1), sql.ErrConnDone)
	gormLogger.Warn(context.Background(), "pool %s", "busy")

	assert.Empty(t, buf.String())
}

func TestPoolMonitor_Report(t *testing.T) {
	base, buf := newBufferLogger()
	monitor := &poolMonitor{logger: base, warnThreshold: 50 * time.Millisecond}

	monitor.report(context.Background(), sql.DBStats{WaitCount: 2}, sql.DBStats{WaitCount: 2})
	assert.Empty(t, buf.String())

	monitor.report(context.Background(),
		sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond},
		sql.DBStats{WaitCount: 4, WaitDuration: 110 * time.Millisecond, InUse: 10, MaxOpenConnections: 10},
	)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":2`)
}
