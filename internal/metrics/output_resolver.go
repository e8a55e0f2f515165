package metrics

import (
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var outputResolverResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blockinsight7000",
	Subsystem: "output_resolver",
	Name:      "resolved_total",
	Help:      "Count of output lookups by outcome and source.",
}, []string{"network", "outcome", "source"})

// OutputResolver tracks output lookups made during validation.
type OutputResolver struct {
	network string
}

func NewOutputResolver(network model.Network) *OutputResolver {
	return &OutputResolver{network: networkLabel(network)}
}

func (m OutputResolver) ObserveResolve(outcome chain.Outcome, source chain.Source) {
	outputResolverResolvedTotal.WithLabelValues(m.network, outcome.String(), string(source)).Inc()
}
