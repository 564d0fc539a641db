package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	archivedomain "github.com/crowlands/grimoire/internal/archive/domain"
	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	"github.com/crowlands/grimoire/internal/auth/token"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
	generationdomain "github.com/crowlands/grimoire/internal/generation/domain"
	grimoiredomain "github.com/crowlands/grimoire/internal/grimoire/domain"
	oracledomain "github.com/crowlands/grimoire/internal/oracle/domain"
	paymentdomain "github.com/crowlands/grimoire/internal/payment/domain"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not_found")
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	// Quota details, present on spell_limit_reached.
	Limit        *int `json:"limit,omitempty"`
	CurrentCount *int `json:"current_count,omitempty"`
	// Present on feature_locked.
	Feature string `json:"feature,omitempty"`
}

// ErrorHandlingMiddleware turns errors recorded on the context into JSON
// responses after the handler chain has run.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, body := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, body)
	}
}

// AbortWithError records err and stops the handler chain; the error
// middleware renders it.
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// mapError is the single place HTTP status decisions live. Entitlement
// denials keep their structured bodies so the frontend can render upsells.
func mapError(err error) (int, errorBody) {
	var quotaErr *entitlementdomain.QuotaExceededError
	if errors.As(err, &quotaErr) {
		limit, count := quotaErr.Limit, quotaErr.CurrentCount
		return http.StatusForbidden, errorBody{
			Error:        "spell_limit_reached",
			Message:      quotaErr.Message(),
			Limit:        &limit,
			CurrentCount: &count,
		}
	}

	var lockedErr *entitlementdomain.FeatureLockedError
	if errors.As(err, &lockedErr) {
		return http.StatusForbidden, errorBody{
			Error:   "feature_locked",
			Message: lockedErr.Message(),
			Feature: string(lockedErr.Feature),
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, token.ErrExpired),
		errors.Is(err, token.ErrInvalid):
		return http.StatusUnauthorized, errorBody{
			Error:   "unauthorized",
			Message: "Authentication required",
		}

	case errors.Is(err, authdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorBody{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		}

	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorBody{
			Error:   "forbidden",
			Message: "Unauthorized",
		}

	case errors.Is(err, authdomain.ErrEmailTaken):
		return http.StatusBadRequest, errorBody{
			Error:   "email_taken",
			Message: "An account with this email already exists",
		}

	case errors.Is(err, authdomain.ErrInvalidEmail):
		return http.StatusBadRequest, errorBody{
			Error:   "invalid_request",
			Message: "A valid email address is required",
		}

	case errors.Is(err, authdomain.ErrWeakPassword):
		return http.StatusBadRequest, errorBody{
			Error:   "invalid_request",
			Message: "Password must be at least 8 characters",
		}

	case errors.Is(err, paymentdomain.ErrInvalidSignature):
		return http.StatusBadRequest, errorBody{
			Error:   "invalid_signature",
			Message: "Webhook signature verification failed",
		}

	case errors.Is(err, ErrNotFound),
		errors.Is(err, authdomain.ErrUserNotFound),
		errors.Is(err, archivedomain.ErrNotFound),
		errors.Is(err, grimoiredomain.ErrSpellNotFound),
		errors.Is(err, paymentdomain.ErrTransactionNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorBody{
			Error:   "not_found",
			Message: "Resource not found",
		}

	case errors.Is(err, oracledomain.ErrUnknownSpread):
		return http.StatusBadRequest, errorBody{
			Error:   "unknown_spread",
			Message: "Unknown oracle spread",
		}

	case errors.Is(err, generationdomain.ErrModelUnavailable),
		errors.Is(err, generationdomain.ErrNoImage),
		errors.Is(err, paymentdomain.ErrProviderUnavailable):
		return http.StatusInternalServerError, errorBody{
			Error:   "upstream_error",
			Message: "An upstream service failed, please try again",
		}
	}

	var validationErr validationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, errorBody{
			Error:   "invalid_request",
			Message: validationErr.message,
		}
	}

	return http.StatusInternalServerError, errorBody{
		Error:   "internal_error",
		Message: "Internal server error",
	}
}

type validationError struct{ message string }

func (v validationError) Error() string { return v.message }

func invalidRequest(message string) error {
	if message == "" {
		message = "Invalid request"
	}
	return validationError{message: message}
}
