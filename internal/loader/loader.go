// Package loader reads exported analysis-run documents back into records.
package loader

import (
	"encoding/json"
	"io"
	"os"

	"edarec/domain/analysis"
	"edarec/internal/errors"
)

// Document is the on-disk shape of an exported analysis run
type Document struct {
	Analyses []analysis.Analysis `json:"analyses"`
}

// Load reads an exported analysis-run JSON file.
func Load(path string) ([]analysis.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open result file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes an exported analysis run from r and validates each record.
func Parse(r io.Reader) ([]analysis.Analysis, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &errors.AppError{
			Code:    errors.CodeInvalidInput,
			Message: "failed to decode analysis result document",
			Cause:   err,
		}
	}

	records := make([]analysis.Analysis, 0, len(doc.Analyses))
	for _, a := range doc.Analyses {
		record, err := analysis.New(a.Name, a.Features, a.Metrics)
		if err != nil {
			return nil, errors.Wrap(err, "invalid analysis record")
		}
		records = append(records, record)
	}
	return records, nil
}
