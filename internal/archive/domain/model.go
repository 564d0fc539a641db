// Package domain holds the archive content types: the deities, figures,
// sites, rituals, and timeline that ground generated spells in history.
package domain

import "gorm.io/datatypes"

// Deity is a figure of worship or invocation from the occult revival era.
type Deity struct {
	ID                  string                     `gorm:"primaryKey;type:text" json:"id"`
	Name                string                     `gorm:"type:text;not null" json:"name"`
	Origin              string                     `gorm:"type:text" json:"origin"`
	Description         string                     `gorm:"type:text" json:"description"`
	History             string                     `gorm:"type:text" json:"history"`
	AssociatedPractices datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"associated_practices"`
	ImageURL            string                     `gorm:"type:text" json:"image_url"`
	TimePeriod          string                     `gorm:"type:text" json:"time_period"`
}

func (Deity) TableName() string { return "deities" }

// HistoricalFigure is a documented practitioner or author.
type HistoricalFigure struct {
	ID              string                     `gorm:"primaryKey;type:text" json:"id"`
	Name            string                     `gorm:"type:text;not null" json:"name"`
	BirthDeath      string                     `gorm:"type:text" json:"birth_death"`
	Bio             string                     `gorm:"type:text" json:"bio"`
	Contributions   string                     `gorm:"type:text" json:"contributions"`
	AssociatedWorks datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"associated_works"`
	ImageURL        string                     `gorm:"type:text" json:"image_url"`
}

func (HistoricalFigure) TableName() string { return "historical_figures" }

// SacredSite is a place of documented ritual significance.
type SacredSite struct {
	ID                     string            `gorm:"primaryKey;type:text" json:"id"`
	Name                   string            `gorm:"type:text;not null" json:"name"`
	Location               string            `gorm:"type:text" json:"location"`
	Country                string            `gorm:"type:text" json:"country"`
	Coordinates            datatypes.JSONMap `gorm:"type:jsonb" json:"coordinates"`
	HistoricalSignificance string            `gorm:"type:text" json:"historical_significance"`
	TimePeriod             string            `gorm:"type:text" json:"time_period"`
	ImageURL               string            `gorm:"type:text" json:"image_url"`
}

func (SacredSite) TableName() string { return "sacred_sites" }

// Ritual is a documented practice, filterable by category.
type Ritual struct {
	ID               string `gorm:"primaryKey;type:text" json:"id"`
	Name             string `gorm:"type:text;not null" json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	DeityAssociation string `gorm:"type:text" json:"deity_association,omitempty"`
	TimePeriod       string `gorm:"type:text" json:"time_period"`
	Source           string `gorm:"type:text" json:"source"`
	Category         string `gorm:"type:text;index" json:"category"`
}

func (Ritual) TableName() string { return "rituals" }

// TimelineEvent is one entry on the occult revival timeline.
type TimelineEvent struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Year        int    `gorm:"not null;index" json:"year"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:text" json:"category"`
}

func (TimelineEvent) TableName() string { return "timeline_events" }

// SampleSpell is a curated example spell shown for an archetype.
type SampleSpell struct {
	ID             string            `gorm:"primaryKey;type:text" json:"id"`
	ArchetypeID    string            `gorm:"type:text;index" json:"archetype_id"`
	ArchetypeName  string            `gorm:"type:text" json:"archetype_name"`
	ArchetypeTitle string            `gorm:"type:text" json:"archetype_title"`
	Category       string            `gorm:"type:text" json:"category"`
	SpellData      datatypes.JSONMap `gorm:"type:jsonb" json:"spell_data"`
}

func (SampleSpell) TableName() string { return "sample_spells" }
