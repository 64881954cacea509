package app

import (
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
)

// guard runs fn and turns a panic into an error, logging the value and stack first.
func (a *App) guard(op string, fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var stack []string
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				stack = append(stack, line)
			}
		}
		a.logger.Errorw("folio panic", "op", op, "panic", r, "stack", stack)
		err = errors.Errorf("%s: panic: %v", op, r)
	}()
	return fn()
}
