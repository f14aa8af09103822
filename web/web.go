package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html static
var assets embed.FS

// Register mounts the booking page and its static assets on the engine.
// Assets are embedded so the binary is the whole deployment artifact.
func Register(r *gin.Engine) {
	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(staticFS))

	page, err := assets.ReadFile("index.html")
	if err != nil {
		panic(err)
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
}
