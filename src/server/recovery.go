package server

import (
	"fmt"
	"net/http"
	"runtime"
)

// Recovery turns a panicking handler into a 500 JSON response and logs the
// stack trace.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}

				stack := make([]byte, 4096)
				n := runtime.Stack(stack, false)

				errorLogger.Printf("panic: %v\nStack trace:\n%s", err, stack[:n])

				writeJSON(w, http.StatusInternalServerError, errorBody{
					Error:   "Internal server error",
					Message: fmt.Sprint(err),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
