package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createCheckoutRequest struct {
	OriginURL string `json:"origin_url" binding:"required,url"`
}

func (s *Server) CreateCheckout(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequest("origin_url is required"))
		return
	}

	result, err := s.paymentSvc.CreateCheckout(c.Request.Context(), currentUser(c), req.OriginURL)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) CheckoutStatus(c *gin.Context) {
	result, err := s.paymentSvc.PollStatus(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, invalidRequest("unreadable payload"))
		return
	}

	result, err := s.paymentSvc.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
