package execx

import (
	"context"
	"strings"
)

// ScriptRunner is a scripted Runner for tests. Responses are keyed by the
// space-joined command line ("git push origin main"); unmatched commands
// get Default. Every invocation is recorded in Calls in order.
type ScriptRunner struct {
	Responses map[string]Result
	Errors    map[string]error
	Default   Result
	Calls     []string
}

func (r *ScriptRunner) Run(_ context.Context, _ string, name string, args ...string) (Result, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	r.Calls = append(r.Calls, line)

	if err, ok := r.Errors[line]; ok {
		return Result{}, err
	}
	if res, ok := r.Responses[line]; ok {
		return res, nil
	}
	return r.Default, nil
}

// Called reports whether any recorded command line starts with prefix.
func (r *ScriptRunner) Called(prefix string) bool {
	for _, call := range r.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}
