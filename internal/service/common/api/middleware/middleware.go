package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"

	"github.com/epms-project/epms/internal/logging"
)

type Middleware = func(http.Handler) http.Handler

// RequestIDHeader is echoed back on every response so that client reports can be matched to log records
const RequestIDHeader = "X-Request-ID"

// ProblemDetailsType is the body of every error response
type ProblemDetailsType struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Title  string `json:"title,omitempty"`
}

// ChainHandlers applies each middleware in order to the base router.  The last middleware listed is the
// outermost one.
func ChainHandlers(base http.Handler, wrappers ...Middleware) http.Handler {
	h := base
	for _, wrap := range wrappers {
		h = wrap(h)
	}
	return h
}

type durationLogger struct {
	http.ResponseWriter
	statusCode int
}

func (d *durationLogger) WriteHeader(statusCode int) {
	d.statusCode = statusCode
	d.ResponseWriter.WriteHeader(statusCode)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (d *durationLogger) Unwrap() http.ResponseWriter {
	return d.ResponseWriter
}

// LogDuration log time taken to complete a request.
func LogDuration() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			d := durationLogger{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			next.ServeHTTP(&d, r)
			slog.DebugContext(r.Context(), "Request completed", "method", r.Method, "url", r.RequestURI,
				"status", d.statusCode, "duration", time.Since(startTime).String())
		})
	}
}

// RequestID tags the request context with an identifier (taken from the incoming header when present) so that
// every log record written while serving the request carries it.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			ctx := logging.AppendCtx(r.Context(), slog.String("requestId", id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OpenAPIValidation validates all incoming requests against the API document
func OpenAPIValidation(swagger *openapi3.T) Middleware {
	// Clear out the servers array in the swagger document, that skips validating
	// that server names match. We don't know how this thing will be run.
	swagger.Servers = nil

	return oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapimiddleware.Options{
		Options: openapi3filter.Options{
			// Sessions are enforced by the authorization middleware, not by the document
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			MultiError:         false,
		},
		ErrorHandler: func(w http.ResponseWriter, message string, statusCode int) {
			ProblemDetails(w, message, statusCode)
		},
	})
}

// TrailingSlashStripper allow API calls with trailing "/"
func TrailingSlashStripper() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				r.URL.Path = strings.TrimSuffix(r.URL.Path, "/")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ProblemDetails writes an error message using the problem+json content type
func ProblemDetails(w http.ResponseWriter, detail string, code int) {
	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(code)
	out, _ := json.Marshal(ProblemDetailsType{
		Status: code,
		Detail: detail,
		Title:  http.StatusText(code),
	})
	_, err := fmt.Fprintln(w, string(out))
	if err != nil {
		slog.Warn("failed to write problem details", "error", err)
	}
}

// NotFoundFunc replies with a problem+json 404 for unregistered paths
func NotFoundFunc() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ProblemDetails(w, fmt.Sprintf("path %s not found", r.URL.Path), http.StatusNotFound)
	}
}
