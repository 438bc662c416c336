package monitor

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Every test that starts a chart must leave no render, input, or tick
	// goroutines behind once Close returns.
	goleak.VerifyTestMain(m)
}
