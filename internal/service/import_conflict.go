package service

import (
	"context"
	"fmt"
	"reflect"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-pass-import/models"
)

// record is implemented by every entity kind the import reconciles.
type record interface {
	models.Tag | models.Folder | models.Password

	RecordID() string
	RecordRevision() string
	RecordLabel() string
}

type action int

const (
	actionCreate action = iota
	actionSkip
	actionUpdate
	actionMerge
)

func (a action) String() string {
	switch a {
	case actionCreate:
		return "create"
	case actionSkip:
		return "skip"
	case actionUpdate:
		return "update"
	case actionMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// decide picks the action for incoming against the phase snapshot db.
// locked reports stored records that must never be written (shared or
// read-only passwords) and may be nil.
func decide[T record](incoming T, db map[string]T, mode models.ConflictMode, locked func(current T) bool) action {
	id := incoming.RecordID()
	current, exists := db[id]
	if mode == models.AlwaysCreateNew || id == "" || !exists {
		return actionCreate
	}

	switch {
	case mode == models.AlwaysSkipExisting:
		return actionSkip
	case mode == models.SkipIfUnchanged && current.RecordRevision() == incoming.RecordRevision():
		return actionSkip
	case locked != nil && locked(current):
		return actionSkip
	case mode == models.MergeFields:
		return actionMerge
	default:
		return actionUpdate
	}
}

// mergeFields copies every field set on incoming over a copy of current.
// Pointer fields are replaced as a whole, so an explicit false on incoming
// wins over true on current. A non-nil reference list replaces the stored
// one even when empty; string fields can't tell "" from absent and an
// empty one keeps the stored value.
func mergeFields[T record](current, incoming T) (T, error) {
	merged := current
	err := mergo.Merge(&merged, incoming,
		mergo.WithOverride,
		mergo.WithoutDereference,
		mergo.WithTransformers(presentSliceTransformer{}),
	)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("merge fields: %w", err)
	}
	return merged, nil
}

var stringSliceType = reflect.TypeOf([]string(nil))

// presentSliceTransformer overrides []string fields whenever the source is
// non-nil, so an explicit empty list clears the stored one.
type presentSliceTransformer struct{}

func (presentSliceTransformer) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if t != stringSliceType {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}

// kindOps binds the vault operations and messages of one entity kind.
type kindOps[T record] struct {
	template string
	create   func(ctx context.Context, rec T) (T, error)
	update   func(ctx context.Context, rec T) error
	locked   func(current T) bool
}

// reconcile applies the conflict policy to one record, writes it and maps
// its identifier. Vault errors are reported, never returned; the record is
// counted as processed either way.
func reconcile[T record](ctx context.Context, run *importRun, rec T, db map[string]T, ids *IdentifierMap, ops kindOps[T]) {
	defer run.progress.record()

	id := rec.RecordID()
	act := decide(rec, db, run.mode, ops.locked)
	run.logger.Debug().Str("id", id).Str("action", act.String()).Msg("reconcile record")

	switch act {
	case actionSkip:
		ids.Set(id, id)

	case actionCreate:
		created, err := ops.create(ctx, rec)
		if err != nil {
			run.progress.fail(ops.template, rec.RecordLabel(), err)
			return
		}
		if id != "" {
			ids.Set(id, created.RecordID())
		}

	case actionMerge, actionUpdate:
		if act == actionMerge {
			merged, err := mergeFields(db[id], rec)
			if err != nil {
				run.progress.fail(ops.template, rec.RecordLabel(), err)
				return
			}
			rec = merged
		}
		ids.Set(id, id)
		if err := ops.update(ctx, rec); err != nil {
			run.progress.fail(ops.template, rec.RecordLabel(), err)
		}
	}
}
