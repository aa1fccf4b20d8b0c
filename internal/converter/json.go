package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/validators"
	"github.com/MKhiriev/go-pass-import/models"
)

type jsonConverter struct {
	validator validators.Validator
}

// NewJSONConverter returns the converter of the native JSON export:
//
//	{"tags": [...], "folders": [...], "passwords": [...]}
//
// A missing key leaves the kind absent from the dataset. Records missing a
// required field (label for every kind, password for passwords) are
// dropped with a warning.
func NewJSONConverter() Converter {
	return jsonConverter{validator: validators.NewRecordValidator()}
}

func (c jsonConverter) Convert(ctx context.Context, raw []byte, _ models.ImportOptions) (models.ImportDataset, []string, error) {
	if err := ctx.Err(); err != nil {
		return models.ImportDataset{}, nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return models.ImportDataset{}, nil, ErrEmptyInput
	}

	var dataset models.ImportDataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return models.ImportDataset{}, nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	var warnings []string
	if dataset.Tags != nil {
		kept, dropped := filterRecords(ctx, c.validator, *dataset.Tags, validators.FieldLabel)
		dataset.Tags = &kept
		warnings = append(warnings, droppedWarnings("tag", dropped)...)
	}
	if dataset.Folders != nil {
		kept, dropped := filterRecords(ctx, c.validator, *dataset.Folders, validators.FieldLabel)
		dataset.Folders = &kept
		warnings = append(warnings, droppedWarnings("folder", dropped)...)
	}
	if dataset.Passwords != nil {
		kept, dropped := filterRecords(ctx, c.validator, *dataset.Passwords, validators.FieldLabel, validators.FieldPassword)
		dataset.Passwords = &kept
		warnings = append(warnings, droppedWarnings("password", dropped)...)
	}

	return dataset, warnings, nil
}

// filterRecords splits records into the valid ones and the positions of the
// dropped ones.
func filterRecords[T any](ctx context.Context, v validators.Validator, records []T, fields ...string) ([]T, []int) {
	kept := make([]T, 0, len(records))
	var dropped []int
	for i, r := range records {
		if v.Validate(ctx, r, fields...) == nil {
			kept = append(kept, r)
			continue
		}
		dropped = append(dropped, i)
	}
	return kept, dropped
}

func droppedWarnings(kind string, positions []int) []string {
	out := make([]string, 0, len(positions))
	for _, pos := range positions {
		out = append(out, fmt.Sprintf("Skipped %s #%d: required field missing.", kind, pos+1))
	}
	return out
}
