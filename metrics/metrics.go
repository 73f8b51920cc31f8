package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipments_created_total",
		Help: "Number of shipments created.",
	})

	TransitionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipment_transitions_total",
		Help: "Number of lifecycle transitions applied, by target status.",
	}, []string{"status"})

	ProofsAttached = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proof_videos_attached_total",
		Help: "Number of proof videos attached and sealed.",
	})

	ProofUploadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proof_upload_failures_total",
		Help: "Number of proof uploads that failed at the blob store.",
	})

	ShareLinksIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "share_links_issued_total",
		Help: "Number of share links issued.",
	})

	ShareLinkValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "share_link_validations_total",
		Help: "Number of share link validations, by result.",
	}, []string{"result"})

	ShareLinksCleaned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "share_links_cleaned_total",
		Help: "Number of expired share links removed by the cleanup worker.",
	})
)
