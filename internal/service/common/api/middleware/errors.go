/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// interceptor defines an implementation of a workaround for a limitation of the http.ServeMux.
// http.ServeMux does not allow customizing the error handlers (405 Method Not Allowed, 404 from
// path patterns) to write JSON formatted responses instead of plain text.
//
// see: https://github.com/golang/go/issues/65648
type interceptor struct {
	original    http.ResponseWriter
	statusCode  int
	intercepted bool
}

// Header returns the headers stored in the underlying original ResponseWriter
func (e *interceptor) Header() http.Header {
	return e.original.Header()
}

// WriteHeader sets the status code and determines if a plain text error is being written.  If so,
// the header is overwritten to application/problem+json and the body is converted on Write.
func (e *interceptor) WriteHeader(statusCode int) {
	if statusCode >= http.StatusBadRequest &&
		strings.Contains(e.original.Header().Get("Content-Type"), "text/plain") {
		e.original.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
		e.original.Header().Del("Content-Length")
		e.intercepted = true
	}
	e.statusCode = statusCode
	e.original.WriteHeader(statusCode)
}

// Write passes the data through unless a plain text error was intercepted, in which case it is
// wrapped into a problem details document.
func (e *interceptor) Write(data []byte) (int, error) {
	if !e.intercepted {
		return e.original.Write(data) //nolint:wrapcheck
	}
	out, _ := json.Marshal(ProblemDetailsType{
		Status: e.statusCode,
		Detail: strings.TrimSpace(string(data)),
		Title:  http.StatusText(e.statusCode),
	})
	if _, err := e.original.Write(out); err != nil {
		return 0, err //nolint:wrapcheck
	}
	return len(data), nil
}

// Unwrap lets http.ResponseController reach the underlying writer
func (e *interceptor) Unwrap() http.ResponseWriter {
	return e.original
}

// ErrorJsonifier return a problem details document instead of the default plain text
func ErrorJsonifier() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(&interceptor{original: w}, r)
		})
	}
}
