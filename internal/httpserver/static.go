package httpserver

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"finmail-classifier/pkg/response"
)

const indexFile = "index.html"

// registerFrontend serves the built SPA from distDir. Unknown GET paths fall back
// to index.html so client-side routes work. Without a dist directory every
// unmatched path is a 404.
func (srv HTTPServer) registerFrontend() {
	ctx := context.Background()

	if !isDir(srv.distDir) {
		srv.l.Warnf(ctx, "Frontend dist directory %q not found, serving API only", srv.distDir)
		srv.gin.NoRoute(func(c *gin.Context) { response.NotFound(c) })
		return
	}

	root := http.Dir(srv.distDir)
	files := http.FileServer(root)
	index := filepath.Join(srv.distDir, indexFile)

	srv.gin.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) ||
			strings.HasPrefix(p, "/api/") {
			response.NotFound(c)
			return
		}

		if isFile(root, p) {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.File(index)
	})

	srv.l.Infof(ctx, "Serving frontend from %s", srv.distDir)
}

func isDir(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func isFile(root http.FileSystem, p string) bool {
	f, err := root.Open(path.Clean("/" + p))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
