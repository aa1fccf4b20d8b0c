package store

import (
	"github.com/MKhiriev/go-pass-import/internal/adapter"
)

// LocalVault bundles the repositories of a SQL database into an
// [adapter.VaultAdapter].
type LocalVault struct {
	TagRepository
	FolderRepository
	PasswordRepository
}

var _ adapter.VaultAdapter = (*LocalVault)(nil)

func NewLocalVault(db *DB, ids IDGenerator) *LocalVault {
	return &LocalVault{
		TagRepository:      NewTagRepository(db, ids),
		FolderRepository:   NewFolderRepository(db, ids),
		PasswordRepository: NewPasswordRepository(db, ids),
	}
}
