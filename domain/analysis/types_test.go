package analysis

import (
	"errors"
	"testing"

	"edarec/domain/core"
)

func TestMetric_AbsentVersusZero(t *testing.T) {
	a := Analysis{
		Name: Descriptive,
		Metrics: []ScalarMetric{
			{Kind: MetricMissing, Value: 0},
		},
	}

	if v, ok := a.Metric(MetricMissing); !ok || v != 0 {
		t.Errorf("stored zero should be found: got %v, %v", v, ok)
	}
	if _, ok := a.Metric(MetricCardinality); ok {
		t.Error("absent metric reported as present")
	}
	if v := a.MetricOrZero(MetricCardinality); v != 0 {
		t.Errorf("absent metric should default to 0, got %v", v)
	}
}

func TestFeaturePair(t *testing.T) {
	a := Analysis{
		Name:     PearsonCorrelation,
		Features: []Attribute{{Name: "age"}, {Name: "income"}},
	}

	one, two, err := a.FeaturePair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if one != "age" || two != "income" {
		t.Errorf("wrong pair: %s, %s", one, two)
	}

	a.Features = a.Features[:1]
	if _, _, err := a.FeaturePair(); !errors.Is(err, core.ErrMalformedRecord) {
		t.Errorf("expected malformed record error, got %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New("", nil, nil); !errors.Is(err, core.ErrUnknownAnalysis) {
		t.Errorf("empty analysis name accepted: %v", err)
	}
	if _, err := New("KOLMOGOROV", nil, nil); !errors.Is(err, core.ErrUnknownAnalysis) {
		t.Errorf("unknown analysis name accepted: %v", err)
	}
	if _, err := New(Descriptive, []Attribute{{Name: ""}}, nil); err == nil {
		t.Error("unnamed feature accepted")
	}
	metrics := []ScalarMetric{{Kind: "BOGUS", Value: 1}}
	if _, err := New(Descriptive, []Attribute{{Name: "age"}}, metrics); !errors.Is(err, core.ErrUnknownMetricKind) {
		t.Errorf("unknown metric kind accepted: %v", err)
	}
	if _, err := New(Descriptive, []Attribute{{Name: "age"}}, nil); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}
}
