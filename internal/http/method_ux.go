package http

import "net/http"

// MethodMux dispatches on the incoming HTTP method, so one path can mix
// public and token-gated handlers.
func MethodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h.ServeHTTP(w, r)
			return
		}
		JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}
