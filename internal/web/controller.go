package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

type WebController struct {
	index []byte
}

func NewWebController() (*WebController, error) {
	index, err := assets.ReadFile("static/index.html")
	if err != nil {
		return nil, err
	}
	return &WebController{index: index}, nil
}

func (wc *WebController) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", wc.index)
}

func (wc *WebController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func staticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return http.FS(sub)
}
