package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "story_games_created_total",
		Help: "Total number of new playthroughs created.",
	})

	choicesMadeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "story_choices_made_total",
		Help: "Total number of successfully applied choices.",
	})

	navigationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "story_navigations_total",
			Help: "Total number of node transitions by kind.",
		},
		[]string{"kind"},
	)
)
