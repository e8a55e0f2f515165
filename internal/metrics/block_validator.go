package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockValidatorValidateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_validator",
		Name:      "validate_total",
		Help:      "Count of block validations by result.",
	}, []string{"network", "status", "result"})

	blockValidatorValidateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_validator",
		Name:      "validate_duration_seconds",
		Help:      "Duration of block validation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	blockValidatorBlockTxs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_validator",
		Name:      "block_transactions",
		Help:      "Number of transactions per validated block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"network"})

	blockValidatorRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_validator",
		Name:      "rejections_total",
		Help:      "Count of rejected blocks by failed check.",
	}, []string{"network", "reason"})
)

// BlockValidator tracks consensus validation of full blocks.
type BlockValidator struct {
	network string
}

func NewBlockValidator(network model.Network) *BlockValidator {
	return &BlockValidator{network: networkLabel(network)}
}

// ObserveValidate records one validation. Blocks that were processed but rejected count as "rejected".
func (m BlockValidator) ObserveValidate(err error, accepted bool, txs int, started time.Time) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	blockValidatorValidateTotal.WithLabelValues(m.network, statusOf(err), result).Inc()
	blockValidatorValidateDuration.WithLabelValues(m.network, statusOf(err)).Observe(time.Since(started).Seconds())
	if err == nil {
		blockValidatorBlockTxs.WithLabelValues(m.network).Observe(float64(txs))
	}
}

func (m BlockValidator) ObserveRejection(reason string) {
	blockValidatorRejectionsTotal.WithLabelValues(m.network, reason).Inc()
}
