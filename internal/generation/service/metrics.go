package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	spellGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grimoire",
		Subsystem: "generation",
		Name:      "spells_total",
		Help:      "Spell generations by outcome.",
	}, []string{"outcome"})

	spellImages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grimoire",
		Subsystem: "generation",
		Name:      "images_total",
		Help:      "Spell header image generations by outcome.",
	}, []string{"outcome"})

	quotaDenials = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "grimoire",
		Subsystem: "generation",
		Name:      "quota_denials_total",
		Help:      "Generations refused because the free quota was exhausted.",
	})
)
