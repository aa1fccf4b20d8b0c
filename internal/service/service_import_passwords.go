package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/i18n"
	"github.com/MKhiriev/go-pass-import/models"
)

func (s *importService) passwordOps(run *importRun) kindOps[models.Password] {
	return kindOps[models.Password]{
		template: i18n.MsgPasswordError,
		create:   s.vault.CreatePassword,
		update:   s.vault.UpdatePassword,
		locked: func(current models.Password) bool {
			return (run.skipShared && current.IsShared()) || !current.IsEditable()
		},
	}
}

// importPasswords reconciles passwords against the tag and folder maps of
// the run. A nil map means the kind was absent from the input; it is then
// built from the vault so references to stored records still resolve.
func (s *importService) importPasswords(ctx context.Context, run *importRun, passwords []models.Password, tagIDs, folderIDs *IdentifierMap) (*IdentifierMap, error) {
	var err error
	if tagIDs == nil {
		if tagIDs, err = s.analyzeTags(ctx, run); err != nil {
			return nil, err
		}
	}
	if folderIDs == nil {
		if folderIDs, err = s.analyzeFolders(ctx, run); err != nil {
			return nil, err
		}
	}

	run.progress.phase(StatusReadingPasswords)
	db, err := s.vault.ListPasswords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list passwords: %w", err)
	}
	ids := seedIdentity(db)

	run.progress.phase(StatusImportingPasswords)
	ops := s.passwordOps(run)
	batch := s.newBatch(ctx, run)
	for _, password := range passwords {
		password = resolveReferences(password, tagIDs, folderIDs)
		err = batch.Go(password.ID, func() error {
			reconcile(ctx, run, password, db, ids, ops)
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

// resolveReferences rewrites tag and folder references of p to vault
// identifiers. Unknown tags are dropped and an unknown folder becomes the
// root folder.
func resolveReferences(p models.Password, tagIDs, folderIDs *IdentifierMap) models.Password {
	if p.Tags != nil {
		tags := make([]string, 0, len(p.Tags))
		for _, id := range p.Tags {
			if mapped, ok := tagIDs.Get(id); ok {
				tags = append(tags, mapped)
			}
		}
		p.Tags = tags
	}

	if mapped, ok := folderIDs.Get(p.Folder); ok {
		p.Folder = mapped
	} else {
		p.Folder = models.DefaultFolderID
	}
	return p
}
