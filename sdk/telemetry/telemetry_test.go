package telemetry_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault/sdk/telemetry"
)

func TestTelemetry_TraceID(t *testing.T) {
	tel := telemetry.NewTelemetry()

	if got := tel.GetTraceID(context.Background()); got != telemetry.NoTrace {
		t.Errorf("GetTraceID() on bare context = %q, want %q", got, telemetry.NoTrace)
	}

	ctx1 := tel.SetTraceID(context.Background())
	ctx2 := tel.SetTraceID(context.Background())

	id1 := tel.GetTraceID(ctx1)
	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("trace id %q is not a uuid: %v", id1, err)
	}
	if id1 == tel.GetTraceID(ctx2) {
		t.Error("two requests received the same trace id")
	}
}
