package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decoderDecodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "decode_total",
		Help:      "Count of transaction decodes.",
	}, []string{"coin", "network", "status"})

	decoderDecodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "decode_duration_seconds",
		Help:      "Duration of a single transaction decode.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"coin", "network", "status"})

	decoderDecodeSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "decode_size_bytes",
		Help:      "Size of decoded raw transactions.",
		Buckets:   prometheus.ExponentialBuckets(64, 2, 14), // 64..524288
	}, []string{"coin", "network"})

	decoderBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "batch_total",
		Help:      "Count of batch decodes.",
	}, []string{"coin", "network", "status"})

	decoderBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "batch_duration_seconds",
		Help:      "Duration of a batch decode.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	decoderBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "batch_size",
		Help:      "Number of transactions per batch decode.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"coin", "network"})
)

// Decoder tracks metrics for transaction decoding.
type Decoder struct {
	coin    string
	network string
}

// NewDecoder constructs a metrics collector for the decoder service.
func NewDecoder(coin model.Coin, network model.Network) *Decoder {
	return &Decoder{coin: orUnknown(string(coin)), network: orUnknown(string(network))}
}

// ObserveDecode records the outcome of one decode of size raw bytes.
func (m Decoder) ObserveDecode(err error, size int, started time.Time) {
	status := statusLabel(err)
	decoderDecodeTotal.WithLabelValues(m.coin, m.network, status).Inc()
	decoderDecodeDuration.WithLabelValues(m.coin, m.network, status).
		Observe(time.Since(started).Seconds())
	if size > 0 {
		decoderDecodeSize.WithLabelValues(m.coin, m.network).Observe(float64(size))
	}
}

// ObserveBatch records the outcome of a batch decode of items transactions.
func (m Decoder) ObserveBatch(err error, items int, started time.Time) {
	status := statusLabel(err)
	decoderBatchTotal.WithLabelValues(m.coin, m.network, status).Inc()
	decoderBatchDuration.WithLabelValues(m.coin, m.network, status).
		Observe(time.Since(started).Seconds())
	decoderBatchSize.WithLabelValues(m.coin, m.network).Observe(float64(items))
}
