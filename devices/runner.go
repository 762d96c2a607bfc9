package devices

import (
	"context"
	"os/exec"
	"time"
)

// DefaultWaitDelay is how long a killed adb process may keep its output
// pipes open. A forked adb server inherits them and would otherwise hold
// Run open past the context deadline.
const DefaultWaitDelay = 5 * time.Second

// Runner executes a binary synchronously and returns its combined
// stdout and stderr.
type Runner interface {
	Run(ctx context.Context, binary string, args ...string) ([]byte, error)
}

// ExecRunner runs commands as child processes. A zero WaitDelay uses
// DefaultWaitDelay.
type ExecRunner struct {
	WaitDelay time.Duration
}

func (r ExecRunner) Run(ctx context.Context, binary string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}
	return cmd.CombinedOutput()
}
