package speech

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, speechController *SpeechController) {
	r.POST("/tts", speechController.TTS)
}
