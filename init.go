package entropy

import (
	"sync"
	"sync/atomic"
)

// faultHandler holds the host-installed diagnostic sink for
// unrecoverable internal faults. Accessed atomically so registration
// can race with entry points on other goroutines.
var faultHandler atomic.Value // of func(v any)

var initOnce sync.Once

// SetFaultHandler registers fn as the diagnostic sink for
// unrecoverable internal faults. It is safe for concurrent use and
// may be called before or after Init; a nil fn removes the handler.
//
// The handler receives the recovered value of any panic raised inside
// a public entry point (an internal indexing bug, for example) before
// the panic resumes toward the host, exactly once per fault. The
// package never swallows such a panic; the handler exists so the
// hosting environment can surface a diagnostic even when the call
// terminates abnormally.
func SetFaultHandler(fn func(v any)) {
	faultHandler.Store(fn)
}

// Init performs the package's one-time setup: it logs a startup
// confirmation at Info level. Only the first call has any effect;
// later calls are no-ops. Hosts that rely on fault reporting register
// their handler with SetFaultHandler and then call Init once.
func Init() {
	initOnce.Do(func() {
		Logger().Info("entropy module initialized")
	})
}

// guard is deferred by outermost public entry points only, never by
// the helpers they call, so a single fault notifies the handler
// exactly once. It passes the recovered value to the handler and then
// re-raises it unchanged.
func guard() {
	if v := recover(); v != nil {
		if fn, ok := faultHandler.Load().(func(v any)); ok && fn != nil {
			fn(v)
		}
		panic(v)
	}
}
