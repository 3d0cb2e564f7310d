// Package testkit synthesizes realistic analysis records from raw columns.
// It stands in for the upstream metric-computation engine in demos and
// tests; production records arrive already computed.
package testkit

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"edarec/domain/analysis"
	"edarec/domain/core"
)

// DescriptiveRecord builds a DESCRIPTIVE analysis for one attribute from a
// raw column, counting NaN entries as missing.
func DescriptiveRecord(attributeName string, column []float64) (analysis.Analysis, error) {
	if len(column) == 0 {
		return analysis.Analysis{}, core.ErrEmptyDataset
	}

	missing := 0.0
	seen := make(map[float64]struct{})
	for _, v := range column {
		if math.IsNaN(v) {
			missing++
			continue
		}
		seen[v] = struct{}{}
	}

	return analysis.New(
		analysis.Descriptive,
		[]analysis.Attribute{{Name: attributeName}},
		[]analysis.ScalarMetric{
			{Kind: analysis.MetricTotalCount, Value: float64(len(column))},
			{Kind: analysis.MetricMissing, Value: missing},
			{Kind: analysis.MetricCardinality, Value: float64(len(seen))},
		},
	)
}

// CorrelationRecord builds a PEARSON_CORRELATION analysis for two columns.
func CorrelationRecord(nameX, nameY string, x, y []float64) (analysis.Analysis, error) {
	r, err := stats.Pearson(x, y)
	if err != nil {
		return analysis.Analysis{}, err
	}

	return analysis.New(
		analysis.PearsonCorrelation,
		[]analysis.Attribute{{Name: nameX}, {Name: nameY}},
		[]analysis.ScalarMetric{
			{Kind: analysis.MetricCorrelationCoefficient, Value: r},
		},
	)
}

// ChiSquareRecord builds a CHI_SQUARE analysis from an observed-vs-expected
// contingency flattening, putting the test's p-value first in the metric
// sequence as the p-value rule expects.
func ChiSquareRecord(nameX, nameY string, observed, expected []float64, dof int) (analysis.Analysis, error) {
	if len(observed) != len(expected) || len(observed) == 0 || dof < 1 {
		return analysis.Analysis{}, core.NewMalformedRecordError(
			string(analysis.ChiSquare), "observed and expected shapes disagree")
	}

	statistic := 0.0
	for i := range observed {
		diff := observed[i] - expected[i]
		statistic += diff * diff / expected[i]
	}

	dist := distuv.ChiSquared{K: float64(dof)}
	pValue := dist.Survival(statistic)

	return analysis.New(
		analysis.ChiSquare,
		[]analysis.Attribute{{Name: nameX}, {Name: nameY}},
		[]analysis.ScalarMetric{
			{Kind: analysis.MetricPValue, Value: pValue},
		},
	)
}
