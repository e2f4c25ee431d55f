package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RuleRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groeneweide_rule_rejections_total",
		Help: "Operations rejected by a consistency rule or the store, by entity and kind.",
	}, []string{"entity", "kind"})

	CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groeneweide_cascade_deletes_total",
		Help: "Order cascade deletes by result.",
	}, []string{"result"})
)
