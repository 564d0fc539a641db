package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	grimoiredomain "github.com/crowlands/grimoire/internal/grimoire/domain"
	oracledomain "github.com/crowlands/grimoire/internal/oracle/domain"
	waitlistdomain "github.com/crowlands/grimoire/internal/waitlist/domain"
)

func (s *Server) SaveSpell(c *gin.Context) {
	var req grimoiredomain.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("spell_data is required"))
		return
	}

	saved, err := s.grimoireSvc.Save(c.Request.Context(), currentUser(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) ListSavedSpells(c *gin.Context) {
	spells, err := s.grimoireSvc.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if spells == nil {
		spells = []*grimoiredomain.SavedSpell{}
	}
	c.JSON(http.StatusOK, spells)
}

func (s *Server) DeleteSavedSpell(c *gin.Context) {
	spellID, err := snowflake.ParseString(c.Param("id"))
	if err != nil {
		AbortWithError(c, ErrNotFound)
		return
	}

	if err := s.grimoireSvc.Delete(c.Request.Context(), currentUser(c).ID, spellID); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Spell deleted from grimoire"})
}

func (s *Server) JoinWaitlist(c *gin.Context) {
	var req waitlistdomain.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("a valid email is required"))
		return
	}

	result, err := s.waitlistSvc.Join(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) OracleCards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cards": s.oracleSvc.Cards()})
}

func (s *Server) OracleSpreads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"spreads": s.oracleSvc.Spreads()})
}

func (s *Server) OracleDraw(c *gin.Context) {
	var req oracledomain.DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("spread_id is required"))
		return
	}

	reading, err := s.oracleSvc.Draw(c.Request.Context(), currentUser(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}
