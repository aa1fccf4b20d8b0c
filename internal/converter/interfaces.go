// Package converter turns raw import input into the common
// [models.ImportDataset] shape.
//
// Converters are looked up by input type in a [Registry]. The package ships
// the "json" converter reading the native export format; other formats
// register their own implementation.
package converter

import (
	"context"

	"github.com/MKhiriev/go-pass-import/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/converter_mock.go -package=mock

// Converter decodes raw input of one type.
//
// Convert returns the dataset together with non-fatal warnings about single
// records it had to drop or repair. An error means the input as a whole
// could not be read.
type Converter interface {
	Convert(ctx context.Context, raw []byte, opts models.ImportOptions) (models.ImportDataset, []string, error)
}

// ConverterFunc adapts an ordinary function to the [Converter] interface.
type ConverterFunc func(ctx context.Context, raw []byte, opts models.ImportOptions) (models.ImportDataset, []string, error)

// Convert calls f.
func (f ConverterFunc) Convert(ctx context.Context, raw []byte, opts models.ImportOptions) (models.ImportDataset, []string, error) {
	return f(ctx, raw, opts)
}
