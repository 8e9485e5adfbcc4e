package ports

import (
	"context"
	"time"
)

// RunLedger records each optimization attempt for auditability.
//
// Each run id is written exactly once at begin and exactly once at completion
// (Complete or Fail, never both). Write failures must be logged by the caller,
// never allowed to mask the primary result.
type RunLedger interface {
	Begin(ctx context.Context, id string, params []byte) error
	Complete(ctx context.Context, id string, duration time.Duration, output []byte) error
	Fail(ctx context.Context, id string, duration time.Duration, message string) error
}
