package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headerDownloaderBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "header_downloader",
		Name:      "batches_total",
		Help:      "Count of header batches requested from peers.",
	}, []string{"network", "status"})

	headerDownloaderBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "header_downloader",
		Name:      "batch_duration_seconds",
		Help:      "Duration of requesting and accepting a header batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	headerDownloaderHeadersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "header_downloader",
		Name:      "headers_total",
		Help:      "Count of accepted headers.",
	}, []string{"network"})

	blockDownloaderHashesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_downloader",
		Name:      "hash_requests_total",
		Help:      "Count of block hash requests.",
	}, []string{"network", "status"})

	blockDownloaderHashesDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_downloader",
		Name:      "hash_request_duration_seconds",
		Help:      "Duration of block hash requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	blockDownloaderBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_downloader",
		Name:      "blocks_total",
		Help:      "Count of processed blocks.",
	}, []string{"network", "status"})

	blockDownloaderBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_downloader",
		Name:      "block_duration_seconds",
		Help:      "Duration of downloading, validating and committing a block.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"network", "status"})

	blockDownloaderTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_downloader",
		Name:      "transactions_total",
		Help:      "Count of committed transactions.",
	}, []string{"network"})

	syncTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync",
		Name:      "tip_height",
		Help:      "Height of the synchronized tip by stage.",
	}, []string{"network", "stage"})
)

// HeaderDownloader tracks header synchronization.
type HeaderDownloader struct {
	network string
}

func NewHeaderDownloader(network model.Network) *HeaderDownloader {
	return &HeaderDownloader{network: networkLabel(network)}
}

func (m HeaderDownloader) ObserveHeaders(err error, headers int, started time.Time) {
	headerDownloaderBatchesTotal.WithLabelValues(m.network, statusOf(err)).Inc()
	headerDownloaderBatchDuration.WithLabelValues(m.network, statusOf(err)).Observe(time.Since(started).Seconds())
	headerDownloaderHeadersTotal.WithLabelValues(m.network).Add(float64(headers))
}

func (m HeaderDownloader) SetTipHeight(height uint64) {
	syncTipHeight.WithLabelValues(m.network, "header").Set(float64(height))
}

// BlockDownloader tracks full block synchronization.
type BlockDownloader struct {
	network string
}

func NewBlockDownloader(network model.Network) *BlockDownloader {
	return &BlockDownloader{network: networkLabel(network)}
}

func (m BlockDownloader) ObserveHashes(err error, _ int, started time.Time) {
	blockDownloaderHashesTotal.WithLabelValues(m.network, statusOf(err)).Inc()
	blockDownloaderHashesDuration.WithLabelValues(m.network, statusOf(err)).Observe(time.Since(started).Seconds())
}

func (m BlockDownloader) ObserveBlock(err error, txs int, started time.Time) {
	blockDownloaderBlocksTotal.WithLabelValues(m.network, statusOf(err)).Inc()
	blockDownloaderBlockDuration.WithLabelValues(m.network, statusOf(err)).Observe(time.Since(started).Seconds())
	if err == nil {
		blockDownloaderTransactionsTotal.WithLabelValues(m.network).Add(float64(txs))
	}
}

func (m BlockDownloader) SetTipHeight(height uint64) {
	syncTipHeight.WithLabelValues(m.network, "block").Set(float64(height))
}
