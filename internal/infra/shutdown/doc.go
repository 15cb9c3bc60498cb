// Package shutdown coordinates process termination for Calculon.
//
// A Handler waits for SIGINT/SIGTERM, or for a programmatic Trigger when a
// listener fails, then runs registered hooks in reverse registration order
// under a shared timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(10 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	err := h.Wait()
package shutdown
