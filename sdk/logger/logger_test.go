package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/taskvault/taskvault/sdk/logger"
)

type ctxKey struct{}

func TestLogger_TraceID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewDefault(
		logger.WithOutput(&buf),
		logger.WithService("taskvault"),
		logger.WithTraceID(func(ctx context.Context) string {
			v, _ := ctx.Value(ctxKey{}).(string)
			return v
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "trace-123")
	log.InfoContext(ctx, "hello", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log output is not json: %v (%s)", err, buf.String())
	}
	if rec["trace_id"] != "trace-123" {
		t.Errorf("trace_id = %v, want trace-123", rec["trace_id"])
	}
	if rec["service"] != "taskvault" {
		t.Errorf("service = %v, want taskvault", rec["service"])
	}
	if rec["msg"] != "hello" || rec["k"] != "v" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewDefault(logger.WithOutput(&buf), logger.WithLevel("error"))

	log.InfoContext(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record written at error level: %s", buf.String())
	}

	log.ErrorContext(context.Background(), "kept")
	if buf.Len() == 0 {
		t.Fatal("error record not written")
	}
}
