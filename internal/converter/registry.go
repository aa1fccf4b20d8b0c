// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package converter

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-import/models"
)

// TypeJSON is the input type of the native JSON export.
const TypeJSON = "json"

// Registry maps input types to converters. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	converters map[string]Converter
}

// NewRegistry returns a registry holding the built-in converters.
func NewRegistry() *Registry {
	r := &Registry{converters: make(map[string]Converter)}
	r.Register(TypeJSON, NewJSONConverter())
	return r
}

// Register binds c to inputType, replacing any previous binding. Types are
// matched case-insensitively.
func (r *Registry) Register(inputType string, c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[normalizeType(inputType)] = c
}

// Lookup returns the converter registered for inputType.
func (r *Registry) Lookup(inputType string) (Converter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.converters[normalizeType(inputType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImportType, inputType)
	}
	return c, nil
}

// Types lists the registered input types in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.converters))
	for t := range r.converters {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Convert looks up the converter for inputType and runs it.
func (r *Registry) Convert(ctx context.Context, inputType string, raw []byte, opts models.ImportOptions) (models.ImportDataset, []string, error) {
	c, err := r.Lookup(inputType)
	if err != nil {
		return models.ImportDataset{}, nil, err
	}
	return c.Convert(ctx, raw, opts)
}

func normalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
