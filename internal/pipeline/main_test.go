package pipeline

import (
	"testing"

	"go.uber.org/goleak"
)

// Every batch must have joined its workers by the time Render returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
