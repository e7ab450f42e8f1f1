package attrs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	facetQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_facet_queries_total",
		Help: "Constraint maps resolved to product id sets",
	})
	productReplaces = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_product_attribute_replaces_total",
		Help: "Wholesale product attribute replacements",
	})
	droppedNames = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_unresolved_names_total",
		Help: "Attribute or value names dropped by the lenient-skip policy",
	})
)
