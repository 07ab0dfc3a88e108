package middleware

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/golang/glog"

	"github.com/katalvlaran/eventchains/eventchain"
)

// ErrRecovered wraps a panic caught by Recovery.
var ErrRecovered = errors.New("middleware: recovered panic")

// Recovery converts a panic below it into an error. With Stack set the
// goroutine stack is logged and appended to the error message.
type Recovery struct {
	Stack bool
}

// NewRecovery returns a Recovery middleware.
func NewRecovery(stack bool) *Recovery {
	return &Recovery{Stack: stack}
}

// Handle implements eventchain.Middleware.
func (r *Recovery) Handle(ev eventchain.Event, ec *eventchain.Context, next eventchain.Next) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if r.Stack {
			stack := debug.Stack()
			glog.Errorf("panic in %s: %v\n%s", ev.Name(), p, stack)
			err = fmt.Errorf("%w in %s: %v\n%s", ErrRecovered, ev.Name(), p, stack)
			return
		}
		err = fmt.Errorf("%w in %s: %v", ErrRecovered, ev.Name(), p)
	}()

	return next(ec)
}
