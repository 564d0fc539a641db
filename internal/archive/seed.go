package archive

import (
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crowlands/grimoire/internal/archive/domain"
)

// Seed loads the curated archive content. Existing rows are left alone so
// reseeding on every boot is safe.
func Seed(db *gorm.DB, log *zap.Logger) error {
	seeders := []func(*gorm.DB) error{
		seedDeities,
		seedFigures,
		seedSites,
		seedRituals,
		seedTimeline,
		seedSampleSpells,
	}
	for _, seed := range seeders {
		if err := seed(db); err != nil {
			return err
		}
	}
	log.Named("archive.seed").Info("archive content seeded")
	return nil
}

func insertIgnoring[T any](db *gorm.DB, rows []T) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func seedDeities(db *gorm.DB) error {
	deities := []domain.Deity{
		{
			ID:          slug.Make("The Morrígan"),
			Name:        "The Morrígan",
			Origin:      "Irish",
			Description: "The great queen of battle, sovereignty, and prophecy, appearing as a crow.",
			History:     "Revived in early twentieth century Celtic scholarship and embraced by practitioners seeking ancestral Irish tradition. Her crow form made her the natural patron of the Crowlands.",
			AssociatedPractices: datatypes.NewJSONSlice([]string{
				"crow augury", "battlefield blessings", "sovereignty rites",
			}),
			ImageURL:   "/images/deities/morrigan.jpg",
			TimePeriod: "Iron Age origin, 1900s revival",
		},
		{
			ID:          slug.Make("Brigid"),
			Name:        "Brigid",
			Origin:      "Irish",
			Description: "Goddess of hearth, forge, poetry, and healing wells.",
			History:     "Her cult survived through the saint of the same name; Irish Catholic households kept Brigid's crosses above their doors well into the twentieth century.",
			AssociatedPractices: datatypes.NewJSONSlice([]string{
				"hearth blessings", "Brigid's cross weaving", "well offerings",
			}),
			ImageURL:   "/images/deities/brigid.jpg",
			TimePeriod: "Pre-Christian origin, continuous folk practice",
		},
		{
			ID:          slug.Make("Hecate"),
			Name:        "Hecate",
			Origin:      "Greek",
			Description: "Goddess of crossroads, keys, and night magic.",
			History:     "Adopted by the theosophical and ceremonial circles of the 1910s-1930s as the patron of liminal work and protective witchcraft.",
			AssociatedPractices: datatypes.NewJSONSlice([]string{
				"crossroads offerings", "key charms", "night vigils",
			}),
			ImageURL:   "/images/deities/hecate.jpg",
			TimePeriod: "Classical origin, occult revival adoption",
		},
	}
	return insertIgnoring(db, deities)
}

func seedFigures(db *gorm.DB) error {
	figures := []domain.HistoricalFigure{
		{
			ID:            slug.Make("Dion Fortune"),
			Name:          "Dion Fortune",
			BirthDeath:    "1890-1946",
			Bio:           "Occultist, author, and founder of the Fraternity of the Inner Light.",
			Contributions: "Systematized psychic self-defense and made ceremonial technique accessible to household practitioners.",
			AssociatedWorks: datatypes.NewJSONSlice([]string{
				"Psychic Self-Defence (1930)", "The Mystical Qabalah (1935)",
			}),
			ImageURL: "/images/figures/dion-fortune.jpg",
		},
		{
			ID:            slug.Make("Sir Oliver Lodge"),
			Name:          "Sir Oliver Lodge",
			BirthDeath:    "1851-1940",
			Bio:           "Physicist and psychical researcher who turned to spirit communication after losing his son Raymond in WWI.",
			Contributions: "Brought scientific method and public respectability to séance research.",
			AssociatedWorks: datatypes.NewJSONSlice([]string{
				"Raymond, or Life and Death (1916)",
			}),
			ImageURL: "/images/figures/oliver-lodge.jpg",
		},
		{
			ID:            slug.Make("F.W.H. Myers"),
			Name:          "F.W.H. Myers",
			BirthDeath:    "1843-1901",
			Bio:           "Classicist and co-founder of the Society for Psychical Research.",
			Contributions: "Established the testing methodology later practitioners applied to automatic writing and mediumship.",
			AssociatedWorks: datatypes.NewJSONSlice([]string{
				"Human Personality and Its Survival of Bodily Death (1903)",
			}),
			ImageURL: "/images/figures/fwh-myers.jpg",
		},
		{
			ID:            slug.Make("Gerald Gardner"),
			Name:          "Gerald Gardner",
			BirthDeath:    "1884-1964",
			Bio:           "Civil servant and folklorist credited with founding modern Wicca.",
			Contributions: "Collected and published the working formulas of the New Forest coven tradition.",
			AssociatedWorks: datatypes.NewJSONSlice([]string{
				"Witchcraft Today (1954)",
			}),
			ImageURL: "/images/figures/gerald-gardner.jpg",
		},
	}
	return insertIgnoring(db, figures)
}

func seedSites(db *gorm.DB) error {
	sites := []domain.SacredSite{
		{
			ID:                     slug.Make("Glastonbury Tor"),
			Name:                   "Glastonbury Tor",
			Location:               "Somerset",
			Country:                "England",
			Coordinates:            datatypes.JSONMap{"lat": 51.1446, "lng": -2.6986},
			HistoricalSignificance: "Focal point of the Avalon revival; Dion Fortune kept a house at its foot and set her Avalon workings there.",
			TimePeriod:             "Continuous, 1920s revival focus",
			ImageURL:               "/images/sites/glastonbury-tor.jpg",
		},
		{
			ID:                     slug.Make("Christ Church Spitalfields"),
			Name:                   "Christ Church Spitalfields",
			Location:               "London",
			Country:                "England",
			Coordinates:            datatypes.JSONMap{"lat": 51.5196, "lng": -0.0746},
			HistoricalSignificance: "Heart of the Huguenot weaving community whose craft traditions carried protective needlework into the twentieth century.",
			TimePeriod:             "1714 onward",
			ImageURL:               "/images/sites/christ-church-spitalfields.jpg",
		},
		{
			ID:                     slug.Make("College of Psychic Studies"),
			Name:                   "College of Psychic Studies",
			Location:               "South Kensington, London",
			Country:                "England",
			Coordinates:            datatypes.JSONMap{"lat": 51.4934, "lng": -0.1791},
			HistoricalSignificance: "The London Spiritualist Alliance's home, where interwar mediums were trained and tested.",
			TimePeriod:             "1884 onward, interwar peak",
			ImageURL:               "/images/sites/college-psychic-studies.jpg",
		},
	}
	return insertIgnoring(db, sites)
}

func seedRituals(db *gorm.DB) error {
	rituals := []domain.Ritual{
		{
			ID:               slug.Make("Witch Bottle Creation"),
			Name:             "Witch Bottle Creation",
			Description:      "A sealed bottle of pins, thread, and taglocks buried at the threshold to absorb harm aimed at the household.",
			DeityAssociation: "Hecate",
			TimePeriod:       "17th century origin, 1920s revival",
			Source:           "Traditional cunning craft, documented by folklorists",
			Category:         "protection",
		},
		{
			ID:          slug.Make("Crow's Vigil"),
			Name:        "Crow's Vigil",
			Description: "A night vigil for the dead: a candle, a photograph, and words spoken until first light.",
			TimePeriod:  "WWI mourning culture",
			Source:      "National remembrance practice, adapted",
			Category:    "grief",
		},
		{
			ID:          slug.Make("Shadow Scrying"),
			Name:        "Shadow Scrying",
			Description: "Divination by candlelight against black silk, reading what moves in the dark rather than the light.",
			TimePeriod:  "1920s séance rooms",
			Source:      "College of Psychic Studies practice notes",
			Category:    "divination",
		},
		{
			ID:          slug.Make("The Dawn Cup"),
			Name:        "The Dawn Cup",
			Description: "A daily tea blessing: silence for the first sip, one gentle intention for the day.",
			TimePeriod:  "Wartime Britain",
			Source:      "Household practice, Mass Observation records",
			Category:    "courage",
		},
		{
			ID:          slug.Make("Midnight Stitch"),
			Name:        "Midnight Stitch",
			Description: "Sewing an intention into cloth at the liminal hour; the thread color carries the working.",
			TimePeriod:  "Spitalfields weaving tradition",
			Source:      "Huguenot craft lore",
			Category:    "protection",
		},
	}
	return insertIgnoring(db, rituals)
}

func seedTimeline(db *gorm.DB) error {
	events := []domain.TimelineEvent{
		{
			ID:          slug.Make("1903 Human Personality published"),
			Year:        1903,
			Title:       "Myers' Human Personality published",
			Description: "F.W.H. Myers' posthumous work gives psychical research its methodological foundation.",
			Category:    "scholarship",
		},
		{
			ID:          slug.Make("1916 Raymond published"),
			Year:        1916,
			Title:       "Lodge publishes Raymond",
			Description: "Sir Oliver Lodge's account of séance contact with his dead son makes spirit communication a national conversation.",
			Category:    "spiritualism",
		},
		{
			ID:          slug.Make("1920 seance boom"),
			Year:        1920,
			Title:       "The postwar séance boom",
			Description: "Mass grief after WWI fills séance rooms; spirit photography and automatic writing reach their peak.",
			Category:    "spiritualism",
		},
		{
			ID:          slug.Make("1930 Psychic Self-Defence"),
			Year:        1930,
			Title:       "Fortune publishes Psychic Self-Defence",
			Description: "Dion Fortune's manual brings protective technique out of the lodges and into ordinary homes.",
			Category:    "scholarship",
		},
		{
			ID:          slug.Make("1940 blackout seances"),
			Year:        1940,
			Title:       "Blackout séances",
			Description: "Blitz-era blackouts turn London parlors into ready-made séance rooms; household charm-work revives.",
			Category:    "wartime",
		},
		{
			ID:          slug.Make("1945 veil spell"),
			Year:        1945,
			Title:       "The veil spell",
			Description: "The Crowlands family seals its secrets behind the protective working later generations would name and break.",
			Category:    "family",
		},
	}
	return insertIgnoring(db, events)
}

func seedSampleSpells(db *gorm.DB) error {
	samples := []domain.SampleSpell{
		{
			ID:             "shigg-dawn-cup-blessing",
			ArchetypeID:    "shiggy",
			ArchetypeName:  `Sheila "Shiggy" Tayler`,
			ArchetypeTitle: "The Psychic Matriarch",
			Category:       "Tea Ritual",
			SpellData: datatypes.JSONMap{
				"title":    "The Dawn Cup Blessing",
				"subtitle": "A Daily Ritual of Presence and Gratitude",
				"tarot_card": map[string]any{
					"title":       "The Dawn Cup",
					"symbol":      "🫖",
					"essence":     "Make tea. Watch steam rise. Let the first sip be silence.",
					"key_action":  "Begin each day with intention, presence, and the warmth of simple ritual.",
					"incantation": "This cup holds what I need. This moment is enough.",
					"timing":      "Dawn, Morning, Any Day",
					"warning":     "Do not rush. The magic lives in the pause.",
				},
				"introduction": "In the war years, tea was rationed but never abandoned. The ritual mattered more than the leaves themselves. This is simply being present with something warm in your hands when the world is cold.",
				"spoken_words": map[string]any{
					"invocation":       "I greet this day with warmth in my hands and stillness in my heart.",
					"main_incantation": "This cup holds what I need. This moment is enough. What I sip, I bless. What I bless, I become.",
					"closing":          "The cup is empty. The day begins. I carry this warmth with me.",
				},
			},
		},
		{
			ID:             "katherine-midnight-stitch",
			ArchetypeID:    "catherine",
			ArchetypeName:  "Katherine",
			ArchetypeTitle: "The Weaver of Hidden Knowledge",
			Category:       "Night Magic",
			SpellData: datatypes.JSONMap{
				"title":    "The Midnight Stitch",
				"subtitle": "Sewing intention at the liminal hour",
				"tarot_card": map[string]any{
					"title":       "The Midnight Stitch",
					"symbol":      "🪡",
					"essence":     "Thread carries intention across time; sew it at midnight.",
					"key_action":  "Stitch one word of intention into cloth you will keep close.",
					"incantation": "The needle knows what the mind forgets.",
					"timing":      "Midnight, Waxing Moon",
					"warning":     "Test every working; accept nothing blindly.",
				},
				"introduction": "Every stitch is intention. Choose your thread as you would choose your words: white silk for purity, black for protection, red wool for life force.",
				"spoken_words": map[string]any{
					"invocation":       "By needle and thread, by shadow and flame, I begin.",
					"main_incantation": "The needle knows what the mind forgets.",
					"closing":          "The knot is tied. The working holds.",
				},
			},
		},
	}
	return insertIgnoring(db, samples)
}
