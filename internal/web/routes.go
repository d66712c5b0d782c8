package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, webController *WebController, metricsHandler http.Handler) {
	r.GET("/", webController.Index)
	r.StaticFS("/static", staticFS())
	r.GET("/healthz", webController.Health)
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}
}
