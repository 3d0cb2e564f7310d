// Package recommend evaluates precomputed analysis metrics against fixed
// thresholds and produces report recommendation sentences when a threshold
// is crossed.
//
// Each checker is a pure function over an immutable analysis record: no
// shared state, no I/O, safe to call from any number of goroutines.
package recommend

import (
	"math"

	"edarec/domain/analysis"
	"edarec/domain/core"
	"edarec/reporting/template"
)

// CheckMissing flags an attribute whose missing-value rate exceeds
// MissingThreshold. A total count of zero is an unrecoverable input-data
// problem and surfaces as ErrEmptyDataset; no fallback is substituted.
// A nil result with a nil error means no violation.
func CheckMissing(attributeName string, a analysis.Analysis) (*Recommendation, error) {
	total := a.MetricOrZero(analysis.MetricTotalCount)
	missing := a.MetricOrZero(analysis.MetricMissing)

	if total == 0 {
		return nil, core.ErrEmptyDataset
	}

	missingRate := missing / total
	if missingRate <= MissingThreshold {
		return nil, nil
	}

	msg := template.MustRender(template.HighMissing, template.Params{
		"name":  attributeName,
		"value": template.Float(missingRate),
	})
	return &Recommendation{Kind: HighMissing, Message: msg}, nil
}

// CheckCardinality flags an attribute whose cardinality exceeds
// CardinalityThreshold. An absent cardinality metric counts as zero; unlike
// CheckMissing this rule has no failure path.
func CheckCardinality(attributeName string, a analysis.Analysis) *Recommendation {
	cardinality := a.MetricOrZero(analysis.MetricCardinality)
	if cardinality <= CardinalityThreshold {
		return nil
	}

	msg := template.MustRender(template.HighCardinality, template.Params{
		"name":  attributeName,
		"value": template.Float(cardinality),
	})
	return &Recommendation{Kind: HighCardinality, Message: msg}
}

// CheckPearsonCorrelation flags a feature pair whose correlation coefficient
// exceeds CorrelationCoefficientThreshold in absolute value. An absent
// coefficient metric counts as zero. A record without two features is
// malformed.
func CheckPearsonCorrelation(a analysis.Analysis) (*Recommendation, error) {
	nameOne, nameTwo, err := a.FeaturePair()
	if err != nil {
		return nil, err
	}

	coefficient := a.MetricOrZero(analysis.MetricCorrelationCoefficient)
	if math.Abs(coefficient) <= CorrelationCoefficientThreshold {
		return nil, nil
	}

	msg := template.MustRender(template.HighCorrelation, template.Params{
		"name_one": nameOne,
		"name_two": nameTwo,
		"metric":   "correlation coefficient",
		"value":    template.Coefficient(coefficient),
	})
	return &Recommendation{Kind: HighCorrelation, Message: msg}, nil
}

// CheckPValue flags a statistical test whose p-value falls below
// PValueThreshold. The test's p-value is the first metric in the sequence
// by contract with the upstream engine; an empty metric sequence or a
// record without two features is malformed.
func CheckPValue(a analysis.Analysis) (*Recommendation, error) {
	if len(a.Metrics) == 0 {
		return nil, core.NewMalformedRecordError(string(a.Name),
			"statistical test carries no metrics")
	}
	nameOne, nameTwo, err := a.FeaturePair()
	if err != nil {
		return nil, err
	}

	pValue := a.Metrics[0].Value
	if pValue >= PValueThreshold {
		return nil, nil
	}

	msg := template.MustRender(template.LowPValue, template.Params{
		"name_one":  nameOne,
		"name_two":  nameTwo,
		"metric":    "p-value",
		"value":     template.Scientific(pValue),
		"test_name": a.Name.String(),
	})
	return &Recommendation{Kind: LowPValue, Message: msg}, nil
}
