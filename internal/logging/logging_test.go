package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/testutil"
)

func TestPGHandlerPersistsErrors(t *testing.T) {
	db := testutil.NewDB(t)
	h := newPGHandler(db, time.Hour)
	logger := slog.New(h).With("trace_id", "req-1")

	logger.Info("ignored")
	logger.Error("payment approve failed",
		"email", "anna@example.com",
		"plan_type", "month",
		"action", "payment_approve",
		"error", errors.New("boom"),
		"latency_ms", 12.6,
		"request_id_extra", 7,
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "payment approve failed", entry.Message)
	assert.Equal(t, "req-1", entry.TraceID)
	require.NotNil(t, entry.Email)
	assert.Equal(t, "anna@example.com", *entry.Email)
	assert.Equal(t, "month", entry.PlanType)
	assert.Equal(t, "payment_approve", entry.Action)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, float64(7), extra["request_id_extra"])
}

func TestPGHandlerStopIsIdempotent(t *testing.T) {
	h := newPGHandler(testutil.NewDB(t), time.Hour)
	h.Stop()
	h.Stop()
}

func TestPurgeOlderThan(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now().UTC()
	require.NoError(t, db.Create(&[]models.SystemLog{
		{Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{Timestamp: now, Level: "ERROR", Message: "fresh"},
	}).Error)

	assert.Equal(t, int64(1), PurgeOlderThan(db, now.AddDate(0, 0, -30)))

	var left []models.SystemLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "fresh", left[0].Message)
}

type recordingHandler struct {
	levels []slog.Level
}

func (r *recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= slog.LevelWarn }
func (r *recordingHandler) Handle(_ context.Context, rec slog.Record) error {
	r.levels = append(r.levels, rec.Level)
	return nil
}
func (r *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recordingHandler) WithGroup(string) slog.Handler      { return r }

func TestMultiHandlerFansOut(t *testing.T) {
	var buf bytes.Buffer
	rec := &recordingHandler{}
	logger := slog.New(NewMultiHandler(NewJSONHandler(&buf), rec))

	logger.Info("hello", "action", "calculate")
	logger.Warn("careful")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"msg":"careful"`)
	assert.Equal(t, []slog.Level{slog.LevelWarn}, rec.levels)
}
