package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/models"
)

type folderRepository struct {
	*DB
	ids IDGenerator
}

func NewFolderRepository(db *DB, ids IDGenerator) FolderRepository {
	return &folderRepository{DB: db, ids: ids}
}

// ListFolders returns the stored folders. The root folder is implicit and
// never part of the result.
func (r *folderRepository) ListFolders(ctx context.Context) (map[string]models.Folder, error) {
	query, args, err := buildListQuery(r.builder(), foldersTable, folderColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "folderRepository.ListFolders").Msg("failed to list folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make(map[string]models.Folder)
	for rows.Next() {
		var (
			folder           models.Folder
			parent           string
			favorite, hidden bool
		)
		if err = rows.Scan(&folder.ID, &folder.Revision, &folder.Label, &parent, &favorite, &hidden); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		folder.Parent, folder.Favorite, folder.Hidden = &parent, &favorite, &hidden
		folders[folder.ID] = folder
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	folder.ID = r.ids.Generate()
	folder.Revision = r.ids.Generate()

	query, args, err := buildInsertFolderQuery(r.builder(), folder)
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "folderRepository.CreateFolder").Str("label", folder.Label).Msg("failed to insert folder")
		return models.Folder{}, r.mapWriteError(err)
	}

	return folder, nil
}

func (r *folderRepository) UpdateFolder(ctx context.Context, folder models.Folder) error {
	folder.Revision = r.ids.Generate()

	query, args, err := buildUpdateFolderQuery(r.builder(), folder)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "folderRepository.UpdateFolder", folder.ID, query, args)
}
