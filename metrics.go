package main

import "github.com/prometheus/client_golang/prometheus"

// Live metrics exposed on /metrics. Gauges are refreshed once per world
// tick; counters are incremented at the event site.
var (
	metricPlayersOnline = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "arena",
		Name:      "players_online",
		Help:      "Connected human players currently in the game.",
	})
	metricBotsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "arena",
		Name:      "bots_active",
		Help:      "Bot players currently alive or awaiting respawn.",
	})
	metricProjectilesLive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "arena",
		Name:      "projectiles_live",
		Help:      "Projectiles currently in flight.",
	})
	metricTeamsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "arena",
		Name:      "teams_active",
		Help:      "Teams with at least one member.",
	})
	metricTicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "arena",
		Name:      "ticks_total",
		Help:      "World ticks executed since start.",
	})
	metricHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "arena",
		Name:      "hits_total",
		Help:      "Damage applications from either hit path.",
	})
	metricIntentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arena",
		Name:      "intents_total",
		Help:      "Inbound client intents by message type.",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(
		metricPlayersOnline,
		metricBotsActive,
		metricProjectilesLive,
		metricTeamsActive,
		metricTicksTotal,
		metricHitsTotal,
		metricIntentsTotal,
	)
}
