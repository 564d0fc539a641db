// Package migration keeps the schema in step with the models on boot.
package migration

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	archivedomain "github.com/crowlands/grimoire/internal/archive/domain"
	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	grimoiredomain "github.com/crowlands/grimoire/internal/grimoire/domain"
	paymentdomain "github.com/crowlands/grimoire/internal/payment/domain"
	waitlistdomain "github.com/crowlands/grimoire/internal/waitlist/domain"
)

func Migrate(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&authdomain.User{},
		&paymentdomain.Transaction{},
		&grimoiredomain.SavedSpell{},
		&waitlistdomain.Entry{},
		&archivedomain.Deity{},
		&archivedomain.HistoricalFigure{},
		&archivedomain.SacredSite{},
		&archivedomain.Ritual{},
		&archivedomain.TimelineEvent{},
		&archivedomain.SampleSpell{},
	)
	if err != nil {
		return err
	}
	log.Named("migration").Info("schema migrated")
	return nil
}

var Module = fx.Module("migration",
	fx.Invoke(Migrate),
)
