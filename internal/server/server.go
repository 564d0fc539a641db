// Package server exposes the HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crowlands/grimoire/internal/archive"
	archivedomain "github.com/crowlands/grimoire/internal/archive/domain"
	"github.com/crowlands/grimoire/internal/auth"
	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	"github.com/crowlands/grimoire/internal/config"
	"github.com/crowlands/grimoire/internal/entitlement"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
	"github.com/crowlands/grimoire/internal/generation"
	generationdomain "github.com/crowlands/grimoire/internal/generation/domain"
	"github.com/crowlands/grimoire/internal/grimoire"
	grimoiredomain "github.com/crowlands/grimoire/internal/grimoire/domain"
	"github.com/crowlands/grimoire/internal/migration"
	"github.com/crowlands/grimoire/internal/oracle"
	oracledomain "github.com/crowlands/grimoire/internal/oracle/domain"
	"github.com/crowlands/grimoire/internal/payment"
	paymentdomain "github.com/crowlands/grimoire/internal/payment/domain"
	"github.com/crowlands/grimoire/internal/waitlist"
	waitlistdomain "github.com/crowlands/grimoire/internal/waitlist/domain"
	"github.com/crowlands/grimoire/pkg/db"
)

var Module = fx.Module("http.server",
	db.Module,
	migration.Module,
	auth.Module,
	entitlement.Module,
	payment.Module,
	generation.Module,
	archive.Module,
	grimoire.Module,
	oracle.Module,
	waitlist.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(CORSMiddleware(cfg.CORSOrigins))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	db     *gorm.DB

	authSvc        authdomain.Service
	entitlementSvc entitlementdomain.Service
	paymentSvc     paymentdomain.Service
	generationSvc  generationdomain.Service
	archiveSvc     archivedomain.Service
	grimoireSvc    grimoiredomain.Service
	oracleSvc      oracledomain.Service
	waitlistSvc    waitlistdomain.Service
	catalog        *generationdomain.Catalog
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	DB             *gorm.DB
	AuthSvc        authdomain.Service
	EntitlementSvc entitlementdomain.Service
	PaymentSvc     paymentdomain.Service
	GenerationSvc  generationdomain.Service
	ArchiveSvc     archivedomain.Service
	GrimoireSvc    grimoiredomain.Service
	OracleSvc      oracledomain.Service
	WaitlistSvc    waitlistdomain.Service
	Catalog        *generationdomain.Catalog
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		authSvc:        p.AuthSvc,
		entitlementSvc: p.EntitlementSvc,
		paymentSvc:     p.PaymentSvc,
		generationSvc:  p.GenerationSvc,
		archiveSvc:     p.ArchiveSvc,
		grimoireSvc:    p.GrimoireSvc,
		oracleSvc:      p.OracleSvc,
		waitlistSvc:    p.WaitlistSvc,
		catalog:        p.Catalog,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/auth/me", s.AuthRequired(), s.Me)
	api.POST("/auth/update-email", s.AuthRequired(), s.UpdateEmail)

	api.GET("/deities", s.ListDeities)
	api.GET("/deities/:id", s.GetDeity)
	api.GET("/historical-figures", s.ListFigures)
	api.GET("/historical-figures/:id", s.GetFigure)
	api.GET("/sacred-sites", s.ListSites)
	api.GET("/sacred-sites/:id", s.GetSite)
	api.GET("/rituals", s.ListRituals)
	api.GET("/rituals/:id", s.GetRitual)
	api.GET("/timeline", s.Timeline)
	api.GET("/archetypes", s.ListArchetypes)
	api.GET("/sample-spells", s.ListSampleSpells)
	api.GET("/sample-spells/:archetype_id", s.ListArchetypeSampleSpells)

	api.POST("/ai/chat", s.Chat)
	api.POST("/ai/generate-spell", s.AuthOptional(), s.GenerateSpell)
	api.POST("/ai/generate-image", s.GenerateImage)

	api.POST("/grimoire/save", s.AuthRequired(), s.SaveSpell)
	api.GET("/grimoire/spells", s.AuthRequired(), s.ListSavedSpells)
	api.DELETE("/grimoire/spells/:id", s.AuthRequired(), s.DeleteSavedSpell)

	api.GET("/subscription/status", s.AuthRequired(), s.SubscriptionStatus)
	api.POST("/subscription/upgrade-manual", s.ManualUpgrade)

	api.POST("/stripe/create-checkout", s.AuthRequired(), s.CreateCheckout)
	api.GET("/stripe/checkout-status/:session_id", s.AuthRequired(), s.CheckoutStatus)
	api.POST("/webhook/stripe", s.StripeWebhook)

	api.POST("/favorites", s.AuthRequired(), s.AddFavorite)
	api.GET("/favorites", s.AuthRequired(), s.ListFavorites)
	api.DELETE("/favorites", s.AuthRequired(), s.RemoveFavorite)

	api.POST("/waitlist/join", s.JoinWaitlist)

	api.GET("/oracle/cards", s.OracleCards)
	api.GET("/oracle/spreads", s.OracleSpreads)
	api.POST("/oracle/draw", s.AuthOptional(), s.OracleDraw)
}
