package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PDBReads counts read_pdb requests by outcome (ok, not_found, error)
var PDBReads = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "molviewd_pdb_reads_total",
		Help: "Total number of PDB file reads served by the API",
	},
	[]string{"outcome"},
)

// PDBReadBytes records the size distribution of served PDB files
var PDBReadBytes = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "molviewd_pdb_read_bytes",
		Help:    "Size in bytes of PDB files read into memory",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	},
)

// StaticRequests counts static file requests by status (ok, not_found)
var StaticRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "molviewd_static_requests_total",
		Help: "Total number of static file requests served",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(PDBReads, PDBReadBytes)
	prometheus.MustRegister(StaticRequests)
}
