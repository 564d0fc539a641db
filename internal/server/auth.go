package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
)

type userResponse struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Name                 string `json:"name"`
	SubscriptionTier     string `json:"subscription_tier"`
	SubscriptionStatus   string `json:"subscription_status"`
	SpellGenerationCount int    `json:"spell_generation_count"`
}

func toUserResponse(user *authdomain.User) userResponse {
	return userResponse{
		ID:                   user.ID.String(),
		Email:                user.Email,
		Name:                 user.Name,
		SubscriptionTier:     string(user.SubscriptionTier),
		SubscriptionStatus:   user.SubscriptionStatus,
		SpellGenerationCount: user.SpellGenerationCount,
	}
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("email, password and name are required"))
		return
	}

	result, err := s.authSvc.Register(c.Request.Context(), authdomain.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("email and password are required"))
		return
	}

	result, err := s.authSvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func (s *Server) Me(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(currentUser(c)))
}

type updateEmailRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) UpdateEmail(c *gin.Context) {
	var req updateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("new_email and password are required"))
		return
	}

	user, err := s.authSvc.UpdateEmail(c.Request.Context(), currentUser(c).ID, req.NewEmail, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

type favoriteRequest struct {
	ItemType string `json:"item_type" binding:"required"`
	ItemID   string `json:"item_id" binding:"required"`
}

func (s *Server) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("item_type and item_id are required"))
		return
	}

	err := s.authSvc.AddFavorite(c.Request.Context(), currentUser(c).ID, authdomain.Favorite{
		Type: req.ItemType,
		ID:   req.ItemID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) ListFavorites(c *gin.Context) {
	favorites, err := s.authSvc.ListFavorites(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if favorites == nil {
		favorites = []authdomain.Favorite{}
	}
	c.JSON(http.StatusOK, favorites)
}

func (s *Server) RemoveFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("item_type and item_id are required"))
		return
	}

	err := s.authSvc.RemoveFavorite(c.Request.Context(), currentUser(c).ID, authdomain.Favorite{
		Type: req.ItemType,
		ID:   req.ItemID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
