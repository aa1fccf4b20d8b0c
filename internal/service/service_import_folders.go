package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/i18n"
	"github.com/MKhiriev/go-pass-import/models"
)

func (s *importService) folderOps() kindOps[models.Folder] {
	return kindOps[models.Folder]{
		template: i18n.MsgFolderError,
		create:   s.vault.CreateFolder,
		update:   s.vault.UpdateFolder,
	}
}

// importFolders reconciles folders parent-first and returns the folder
// identifier map, which always contains the root folder.
//
// A folder is only launched once its parent has settled: when the parent is
// still unknown or in flight in the current batch, the batch is flushed
// first. Parents are rewritten at launch, after that flush.
func (s *importService) importFolders(ctx context.Context, run *importRun, folders []models.Folder) (*IdentifierMap, error) {
	run.progress.phase(StatusReadingFolders)
	db, err := s.vault.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	ids := seedFolders(db)
	sorted := sortFolders(folders, ids)

	run.progress.phase(StatusImportingFolders)
	ops := s.folderOps()
	batch := s.newBatch(ctx, run)
	for _, folder := range sorted {
		if folder.IsRoot() {
			run.progress.record()
			continue
		}

		if parent := folder.ParentID(); parent != "" && (!ids.Has(parent) || batch.Pending(parent)) {
			if err = batch.Flush(); err != nil {
				return nil, err
			}
		}

		folder = resolveParent(folder, ids)
		err = batch.Go(folder.ID, func() error {
			reconcile(ctx, run, folder, db, ids, ops)
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

// analyzeFolders maps every stored folder and the root folder to itself. It
// stands in for the folder phase when the input carries no folders.
func (s *importService) analyzeFolders(ctx context.Context, run *importRun) (*IdentifierMap, error) {
	run.progress.phase(StatusAnalyzingFolders)
	db, err := s.vault.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return seedFolders(db), nil
}
