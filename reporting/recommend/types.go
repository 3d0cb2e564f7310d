package recommend

import "edarec/reporting/template"

// Thresholds above/below which a metric is worth flagging in the report
const (
	MissingThreshold                = 0.1
	CardinalityThreshold            = 100.0
	CorrelationCoefficientThreshold = 0.3
	PValueThreshold                 = 0.05
)

// Kind identifies which rule produced a recommendation. Values double as
// template keys.
type Kind string

const (
	HighMissing     Kind = template.HighMissing
	HighCardinality Kind = template.HighCardinality
	HighCorrelation Kind = template.HighCorrelation
	LowPValue       Kind = template.LowPValue
)

// Recommendation is one rendered report sentence flagging a threshold
// violation. It has no lifecycle beyond the call that produced it.
type Recommendation struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}
