package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListDeities(c *gin.Context) {
	deities, err := s.archiveSvc.ListDeities(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, deities)
}

func (s *Server) GetDeity(c *gin.Context) {
	deity, err := s.archiveSvc.GetDeity(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, deity)
}

func (s *Server) ListFigures(c *gin.Context) {
	figures, err := s.archiveSvc.ListFigures(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, figures)
}

func (s *Server) GetFigure(c *gin.Context) {
	figure, err := s.archiveSvc.GetFigure(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, figure)
}

func (s *Server) ListSites(c *gin.Context) {
	sites, err := s.archiveSvc.ListSites(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sites)
}

func (s *Server) GetSite(c *gin.Context) {
	site, err := s.archiveSvc.GetSite(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

func (s *Server) ListRituals(c *gin.Context) {
	rituals, err := s.archiveSvc.ListRituals(c.Request.Context(), c.Query("category"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rituals)
}

func (s *Server) GetRitual(c *gin.Context) {
	ritual, err := s.archiveSvc.GetRitual(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ritual)
}

func (s *Server) Timeline(c *gin.Context) {
	events, err := s.archiveSvc.Timeline(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Server) ListArchetypes(c *gin.Context) {
	personas := s.catalog.All()
	archetypes := make([]gin.H, 0, len(personas))
	for _, p := range personas {
		archetypes = append(archetypes, gin.H{
			"id":    p.ID,
			"name":  p.Name,
			"title": p.Title,
		})
	}
	c.JSON(http.StatusOK, gin.H{"archetypes": archetypes})
}

func (s *Server) ListSampleSpells(c *gin.Context) {
	spells, err := s.archiveSvc.ListSampleSpells(c.Request.Context(), "")
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, spells)
}

func (s *Server) ListArchetypeSampleSpells(c *gin.Context) {
	spells, err := s.archiveSvc.ListSampleSpells(c.Request.Context(), c.Param("archetype_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, spells)
}
