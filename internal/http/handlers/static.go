package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
)

// StaticHandler serves a built single-page client from dir. Paths that do
// not name a file fall back to index.html; /api paths never do.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Available reports whether dir holds an index.html to fall back to.
func (h *StaticHandler) Available() bool {
	if h == nil || h.dir == "" {
		return false
	}
	st, err := os.Stat(filepath.Join(h.dir, "index.html"))
	return err == nil && !st.IsDir()
}

func (h *StaticHandler) Serve(c *gin.Context) {
	reqPath := c.Request.URL.Path
	if strings.HasPrefix(reqPath, "/api/") || reqPath == "/api" ||
		(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorBody{Message: "Not found"})
		return
	}

	clean := path.Clean("/" + reqPath)
	candidate := filepath.Join(h.dir, filepath.FromSlash(clean))
	if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
		c.File(candidate)
		return
	}
	c.File(filepath.Join(h.dir, "index.html"))
}
