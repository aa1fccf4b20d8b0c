package store

import (
	"context"

	"github.com/MKhiriev/go-pass-import/models"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces identifiers for new records and revisions.
type IDGenerator interface {
	Generate() string
}

type TagRepository interface {
	ListTags(ctx context.Context) (map[string]models.Tag, error)
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	UpdateTag(ctx context.Context, tag models.Tag) error
}

type FolderRepository interface {
	ListFolders(ctx context.Context) (map[string]models.Folder, error)
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	UpdateFolder(ctx context.Context, folder models.Folder) error
}

type PasswordRepository interface {
	ListPasswords(ctx context.Context) (map[string]models.Password, error)
	CreatePassword(ctx context.Context, password models.Password) (models.Password, error)
	UpdatePassword(ctx context.Context, password models.Password) error
}
