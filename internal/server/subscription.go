package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
)

func (s *Server) SubscriptionStatus(c *gin.Context) {
	user := currentUser(c)
	decision := s.entitlementSvc.CheckGenerationAllowed(user)

	c.JSON(http.StatusOK, gin.H{
		"subscription_tier":      user.SubscriptionTier,
		"subscription_status":    user.SubscriptionStatus,
		"spell_limit":            decision.Limit,
		"spells_remaining":       decision.Remaining,
		"spells_used":            user.SpellGenerationCount,
		"total_spells_generated": user.TotalSpellsGenerated,
		"total_spells_saved":     user.TotalSpellsSaved,
		"can_save_spells":        s.entitlementSvc.CheckFeatureGate(user, entitlementdomain.FeatureSaveSpell),
		"can_download_pdf":       s.entitlementSvc.CheckFeatureGate(user, entitlementdomain.FeaturePDFDownload),
	})
}

// ManualUpgrade grants the paid tier by email. It exists for support and
// for exercising paid flows before checkout is configured; the admin key
// is the only guard.
func (s *Server) ManualUpgrade(c *gin.Context) {
	email := c.Query("user_email")
	adminKey := c.Query("admin_key")

	if s.cfg.AdminKey == "" || adminKey != s.cfg.AdminKey {
		AbortWithError(c, ErrForbidden)
		return
	}
	if email == "" {
		AbortWithError(c, invalidRequest("user_email is required"))
		return
	}

	var user authdomain.User
	if err := s.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			AbortWithError(c, authdomain.ErrUserNotFound)
			return
		}
		AbortWithError(c, err)
		return
	}

	if err := s.entitlementSvc.UpgradeToPaid(c.Request.Context(), user.ID, entitlementdomain.UpgradeRef{}); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User " + email + " upgraded to paid tier",
	})
}
