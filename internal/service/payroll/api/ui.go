/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// indexFile is served for every path that does not match a file so that client side routes can be reloaded
const indexFile = "index.html"

// UIHandler serves the pre-built front end from the given directory
func UIHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := path.Clean("/" + r.URL.Path)
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil || info.IsDir() && name != "/" {
			http.ServeFile(w, r, filepath.Join(dir, indexFile))
			return
		}
		files.ServeHTTP(w, r)
	})
}
