package analysis

import (
	"fmt"
	"strconv"

	"edarec/domain/core"
)

// Name identifies the kind of analysis a record holds the result of.
type Name string

const (
	Descriptive        Name = "DESCRIPTIVE"
	Histogram          Name = "HISTOGRAM"
	ValueCounts        Name = "VALUE_COUNTS"
	ContingencyTable   Name = "CONTINGENCY_TABLE"
	TableDescriptive   Name = "TABLE_DESCRIPTIVE"
	PearsonCorrelation Name = "PEARSON_CORRELATION"
	InformationGain    Name = "INFORMATION_GAIN"
	ChiSquare          Name = "CHI_SQUARE"
	Anova              Name = "ANOVA"
	TTest              Name = "T_TEST"
)

// String returns the display name used in report sentences.
func (n Name) String() string {
	return string(n)
}

var knownNames = map[Name]struct{}{
	Descriptive: {}, Histogram: {}, ValueCounts: {}, ContingencyTable: {},
	TableDescriptive: {}, PearsonCorrelation: {}, InformationGain: {},
	ChiSquare: {}, Anova: {}, TTest: {},
}

// Valid reports whether n is a known analysis kind.
func (n Name) Valid() bool {
	_, ok := knownNames[n]
	return ok
}

// MetricKind tags a scalar metric entry
type MetricKind string

const (
	MetricTotalCount             MetricKind = "TOTAL_COUNT"
	MetricMissing                MetricKind = "MISSING"
	MetricCardinality            MetricKind = "CARDINALITY"
	MetricCorrelationCoefficient MetricKind = "CORRELATION_COEFFICIENT"
	MetricPValue                 MetricKind = "P_VALUE"
	MetricFStatistic             MetricKind = "F_STATISTIC"
	MetricInformationGain        MetricKind = "INFORMATION_GAIN"
)

var knownMetricKinds = map[MetricKind]struct{}{
	MetricTotalCount: {}, MetricMissing: {}, MetricCardinality: {},
	MetricCorrelationCoefficient: {}, MetricPValue: {}, MetricFStatistic: {},
	MetricInformationGain: {},
}

// Valid reports whether k is a known metric kind.
func (k MetricKind) Valid() bool {
	_, ok := knownMetricKinds[k]
	return ok
}

// Attribute describes one dataset column an analysis ran over
type Attribute struct {
	Name string `json:"name"`
}

// ScalarMetric is a single named numeric measurement attached to an analysis
type ScalarMetric struct {
	Kind  MetricKind `json:"kind"`
	Value float64    `json:"value"`
}

// Analysis is the result of one statistical analysis run over one or two
// dataset attributes. Constructed by the upstream analysis engine and
// treated as read-only here.
type Analysis struct {
	Name     Name           `json:"name"`
	Features []Attribute    `json:"features"`
	Metrics  []ScalarMetric `json:"metrics"`
}

// Metric scans the metric sequence for the given kind. The second return
// distinguishes an absent entry from a stored zero.
func (a Analysis) Metric(kind MetricKind) (float64, bool) {
	for _, m := range a.Metrics {
		if m.Kind == kind {
			return m.Value, true
		}
	}
	return 0, false
}

// MetricOrZero returns the metric value for kind, or 0 when absent.
// Callers that must tell the two apart use Metric.
func (a Analysis) MetricOrZero(kind MetricKind) float64 {
	v, _ := a.Metric(kind)
	return v
}

// FeatureNames returns the attribute names in record order.
func (a Analysis) FeatureNames() []string {
	names := make([]string, len(a.Features))
	for i, f := range a.Features {
		names[i] = f.Name
	}
	return names
}

// FeaturePair returns the first two feature names. Pairwise analyses
// (correlation, statistical tests) carry exactly two features; anything
// else is a malformed record.
func (a Analysis) FeaturePair() (string, string, error) {
	if len(a.Features) < 2 {
		return "", "", core.NewMalformedRecordError(string(a.Name),
			"pairwise analysis requires two features")
	}
	return a.Features[0].Name, a.Features[1].Name, nil
}

// New creates an analysis record with validation
func New(name Name, features []Attribute, metrics []ScalarMetric) (Analysis, error) {
	if !name.Valid() {
		return Analysis{}, fmt.Errorf("%w: %q", core.ErrUnknownAnalysis, string(name))
	}
	for i, f := range features {
		if f.Name == "" {
			return Analysis{}, core.NewValidationError("features",
				"feature name must be set at index "+strconv.Itoa(i))
		}
	}
	for _, m := range metrics {
		if !m.Kind.Valid() {
			return Analysis{}, fmt.Errorf("%w: %q", core.ErrUnknownMetricKind, string(m.Kind))
		}
	}
	return Analysis{Name: name, Features: features, Metrics: metrics}, nil
}
