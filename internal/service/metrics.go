package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "orders",
		Name:      "ingested_total",
		Help:      "Total number of ingested orders by outcome.",
	}, []string{"outcome"})

	deliveryTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "delivery",
		Name:      "transitions_total",
		Help:      "Total number of sub-order delivery status transitions by target status.",
	}, []string{"status"})

	autoConfirmations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "delivery",
		Name:      "auto_confirmations_total",
		Help:      "Total number of deliveries confirmed by the system.",
	})

	walletMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "wallet",
		Name:      "movements_total",
		Help:      "Total number of wallet ledger entries by type and source.",
	}, []string{"type", "source"})

	escrowReleases = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "escrow",
		Name:      "releases_total",
		Help:      "Total number of sub-order escrows released to store wallets.",
	})

	withdrawalTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "withdrawals",
		Name:      "transitions_total",
		Help:      "Total number of withdrawal requests entering a status.",
	}, []string{"status"})

	withdrawalAmount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "withdrawals",
		Name:      "amount_minor_total",
		Help:      "Sum of requested withdrawal amounts in minor units by status.",
	}, []string{"status"})

	notificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "notifications",
		Name:      "failures_total",
		Help:      "Total number of notifications that could not be prepared or sent.",
	})
)
