package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	generationdomain "github.com/crowlands/grimoire/internal/generation/domain"
)

func (s *Server) GenerateSpell(c *gin.Context) {
	var req generationdomain.SpellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("intention is required"))
		return
	}

	result, err := s.generationSvc.GenerateSpell(c.Request.Context(), currentUser(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) Chat(c *gin.Context) {
	var req generationdomain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("message is required"))
		return
	}

	result, err := s.generationSvc.Chat(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) GenerateImage(c *gin.Context) {
	var req generationdomain.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("prompt is required"))
		return
	}

	result, err := s.generationSvc.GenerateImage(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
