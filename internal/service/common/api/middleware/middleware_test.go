package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/epms-project/epms/internal/service/common/api/middleware"
)

const testDocument = `
openapi: 3.0.3
info:
  title: test
  version: 1.0.0
paths:
  /api/items:
    post:
      operationId: createItem
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                name:
                  type: string
                  minLength: 1
      responses:
        "201":
          description: created
`

func decodeProblem(rec *httptest.ResponseRecorder) middleware.ProblemDetailsType {
	var problem middleware.ProblemDetailsType
	ExpectWithOffset(1, json.Unmarshal(rec.Body.Bytes(), &problem)).To(Succeed())
	return problem
}

var _ = Describe("Middleware", func() {
	Describe("ProblemDetails", func() {
		It("writes a problem+json document", func() {
			rec := httptest.NewRecorder()
			middleware.ProblemDetails(rec, "department not found", http.StatusNotFound)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("application/problem+json"))
			problem := decodeProblem(rec)
			Expect(problem.Status).To(Equal(http.StatusNotFound))
			Expect(problem.Detail).To(Equal("department not found"))
			Expect(problem.Title).To(Equal("Not Found"))
		})
	})

	Describe("ErrorJsonifier", func() {
		It("converts ServeMux plain text errors", func() {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /things", func(w http.ResponseWriter, r *http.Request) {})
			handler := middleware.ChainHandlers(mux, middleware.ErrorJsonifier())

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/things", nil))

			Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("application/problem+json"))
			Expect(decodeProblem(rec).Status).To(Equal(http.StatusMethodNotAllowed))
		})

		It("leaves JSON responses untouched", func() {
			handler := middleware.ErrorJsonifier()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(rec.Body.String()).To(Equal(`{"ok":true}`))
		})
	})

	Describe("RequestID", func() {
		var handler http.Handler

		BeforeEach(func() {
			handler = middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))
		})

		It("generates an identifier when none is supplied", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			_, err := uuid.Parse(rec.Header().Get(middleware.RequestIDHeader))
			Expect(err).ToNot(HaveOccurred())
		})

		It("reuses a valid incoming identifier", func() {
			id := uuid.NewString()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(middleware.RequestIDHeader, id)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal(id))
		})

		It("replaces a malformed incoming identifier", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(middleware.RequestIDHeader, "not-a-uuid\n")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Header().Get(middleware.RequestIDHeader)).ToNot(Equal("not-a-uuid\n"))
		})
	})

	Describe("TrailingSlashStripper", func() {
		It("routes paths with a trailing slash", func() {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/departments", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})
			handler := middleware.ChainHandlers(mux, middleware.TrailingSlashStripper())

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/departments/", nil))
			Expect(rec.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("ChainHandlers", func() {
		It("applies the last middleware outermost", func() {
			var order []string
			tag := func(name string) middleware.Middleware {
				return func(next http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						order = append(order, name)
						next.ServeHTTP(w, r)
					})
				}
			}
			base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { order = append(order, "base") })

			middleware.ChainHandlers(base, tag("inner"), tag("outer")).
				ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(order).To(Equal([]string{"outer", "inner", "base"}))
		})
	})

	Describe("HTTPMetrics", func() {
		It("counts requests by route pattern", func() {
			reg := prometheus.NewRegistry()
			metrics := middleware.NewHTTPMetrics(reg)
			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/employees/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			})
			handler := middleware.ChainHandlers(mux, metrics.Middleware())

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/employees/1", nil))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/employees/2", nil))

			count, err := testutil.GatherAndCount(reg, "epms_http_requests_total")
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(1))
		})

		It("does not label requests with arbitrary methods", func() {
			reg := prometheus.NewRegistry()
			metrics := middleware.NewHTTPMetrics(reg)
			mux := http.NewServeMux()
			mux.HandleFunc("/api/session", func(w http.ResponseWriter, r *http.Request) {})
			handler := middleware.ChainHandlers(mux, metrics.Middleware())

			for _, method := range []string{"BREW", "WHEN", "SPAM"} {
				handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, "/api/session", nil))
				handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, "/nowhere", nil))
			}
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

			count, err := testutil.GatherAndCount(reg, "epms_http_requests_total")
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(2))

			err = testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP epms_http_requests_total Number of HTTP requests served, by method, route and status code.
# TYPE epms_http_requests_total counter
epms_http_requests_total{code="200",method="other",route="/api/session"} 3
epms_http_requests_total{code="404",method="other",route="unmatched"} 4
`), "epms_http_requests_total")
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Describe("OpenAPIValidation", func() {
		var handler http.Handler

		BeforeEach(func() {
			swagger, err := openapi3.NewLoader().LoadFromData([]byte(testDocument))
			Expect(err).ToNot(HaveOccurred())
			handler = middleware.OpenAPIValidation(swagger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			}))
		})

		It("accepts a valid request", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusCreated))
		})

		It("rejects a body missing required properties", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(rec).Detail).To(ContainSubstring("name"))
		})
	})
})
