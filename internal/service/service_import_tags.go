package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/i18n"
	"github.com/MKhiriev/go-pass-import/models"
)

func (s *importService) tagOps() kindOps[models.Tag] {
	return kindOps[models.Tag]{
		template: i18n.MsgTagError,
		create:   s.vault.CreateTag,
		update:   s.vault.UpdateTag,
	}
}

// importTags reconciles tags and returns the tag identifier map.
func (s *importService) importTags(ctx context.Context, run *importRun, tags []models.Tag) (*IdentifierMap, error) {
	run.progress.phase(StatusReadingTags)
	db, err := s.vault.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	ids := seedIdentity(db)

	run.progress.phase(StatusImportingTags)
	ops := s.tagOps()
	batch := s.newBatch(ctx, run)
	for _, tag := range tags {
		err = batch.Go(tag.ID, func() error {
			reconcile(ctx, run, tag, db, ids, ops)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if err = batch.Wait(); err != nil {
		return nil, err
	}

	return ids, nil
}

// analyzeTags maps every stored tag to itself. It stands in for the tag
// phase when the input carries no tags.
func (s *importService) analyzeTags(ctx context.Context, run *importRun) (*IdentifierMap, error) {
	run.progress.phase(StatusAnalyzingTags)
	db, err := s.vault.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return seedIdentity(db), nil
}
