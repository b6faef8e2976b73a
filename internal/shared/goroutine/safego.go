// Package goroutine wraps bare go statements with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"hoteltec/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine and converts a panic into an error log
// carrying the stack and the given name. Post-commit side effects (coupon
// bookkeeping, notification fan-out, receipt emails) launch through here so
// none of them can take down the request that spawned them.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
