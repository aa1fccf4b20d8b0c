// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "runID", RunIDCtxKey.String())
}

func TestGetRunIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{name: "set", ctx: WithRunID(context.Background(), "run-1"), wantID: "run-1", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithRunID(context.Background(), "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), RunIDCtxKey, 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetRunIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
