package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/models"
)

type tagRepository struct {
	*DB
	ids IDGenerator
}

func NewTagRepository(db *DB, ids IDGenerator) TagRepository {
	return &tagRepository{DB: db, ids: ids}
}

func (r *tagRepository) ListTags(ctx context.Context) (map[string]models.Tag, error) {
	query, args, err := buildListQuery(r.builder(), tagsTable, tagColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tagRepository.ListTags").Msg("failed to list tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make(map[string]models.Tag)
	for rows.Next() {
		var (
			tag              models.Tag
			favorite, hidden bool
		)
		if err = rows.Scan(&tag.ID, &tag.Revision, &tag.Label, &tag.Color, &favorite, &hidden); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tag.Favorite, tag.Hidden = &favorite, &hidden
		tags[tag.ID] = tag
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	tag.ID = r.ids.Generate()
	tag.Revision = r.ids.Generate()

	query, args, err := buildInsertTagQuery(r.builder(), tag)
	if err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tagRepository.CreateTag").Str("label", tag.Label).Msg("failed to insert tag")
		return models.Tag{}, r.mapWriteError(err)
	}

	return tag, nil
}

func (r *tagRepository) UpdateTag(ctx context.Context, tag models.Tag) error {
	tag.Revision = r.ids.Generate()

	query, args, err := buildUpdateTagQuery(r.builder(), tag)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "tagRepository.UpdateTag", tag.ID, query, args)
}
