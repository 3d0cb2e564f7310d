// Package annotator runs the recommendation rules over a set of analysis
// records and collects the produced sentences.
package annotator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"edarec/domain/analysis"
	"edarec/internal"
	"edarec/reporting/recommend"
)

// Annotator evaluates recommendation rules over analysis records. Records
// are independent, so evaluation runs with bounded parallelism; output
// order follows record order regardless of scheduling.
type Annotator struct {
	parallelism int
	logger      *internal.Logger
}

// New creates an annotator. Parallelism below 1 is treated as 1.
func New(parallelism int, logger *internal.Logger) *Annotator {
	if parallelism < 1 {
		parallelism = 1
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Annotator{parallelism: parallelism, logger: logger}
}

// Run is the outcome of one annotation pass over a record set
type Run struct {
	ID              string                     `json:"id"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	RecordCount     int                        `json:"record_count"`
	Duration        time.Duration              `json:"duration"`
}

// Annotate applies the rule set to every record and returns the collected
// recommendations in record order. Any rule failure (empty dataset,
// malformed record) fails the whole run; these are caller-input problems
// that must surface, not be skipped.
func (an *Annotator) Annotate(ctx context.Context, records []analysis.Analysis) (*Run, error) {
	started := time.Now()
	runID := uuid.NewString()

	perRecord := make([][]recommend.Recommendation, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(an.parallelism)
	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs, err := evaluate(record)
			if err != nil {
				return err
			}
			perRecord[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		an.logger.Error("annotation run %s failed: %v", runID, err)
		return nil, err
	}

	var all []recommend.Recommendation
	for _, recs := range perRecord {
		all = append(all, recs...)
	}

	run := &Run{
		ID:              runID,
		Recommendations: all,
		RecordCount:     len(records),
		Duration:        time.Since(started),
	}
	an.logger.Info("annotation run %s: %d records, %d recommendations in %s",
		runID, run.RecordCount, len(all), run.Duration)
	return run, nil
}

// evaluate dispatches the rules that apply to one record's analysis kind.
// Kinds without a rule produce nothing.
func evaluate(record analysis.Analysis) ([]recommend.Recommendation, error) {
	var recs []recommend.Recommendation

	appendRec := func(r *recommend.Recommendation) {
		if r != nil {
			recs = append(recs, *r)
		}
	}

	switch record.Name {
	case analysis.PearsonCorrelation:
		r, err := recommend.CheckPearsonCorrelation(record)
		if err != nil {
			return nil, err
		}
		appendRec(r)

	case analysis.Anova, analysis.ChiSquare, analysis.TTest:
		r, err := recommend.CheckPValue(record)
		if err != nil {
			return nil, err
		}
		appendRec(r)

	case analysis.Descriptive:
		for _, name := range record.FeatureNames() {
			r, err := recommend.CheckMissing(name, record)
			if err != nil {
				return nil, err
			}
			appendRec(r)
			appendRec(recommend.CheckCardinality(name, record))
		}
	}

	return recs, nil
}
