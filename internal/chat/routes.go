package chat

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, chatController *ChatController) {
	r.POST("/ask", chatController.Ask)
}
