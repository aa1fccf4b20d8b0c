package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/models"
)

// passwordRepository stores passwords and their tag assignments. Tag
// assignments live in a join table and are replaced as a whole on every
// write.
type passwordRepository struct {
	*DB
	ids IDGenerator
}

func NewPasswordRepository(db *DB, ids IDGenerator) PasswordRepository {
	return &passwordRepository{DB: db, ids: ids}
}

func (r *passwordRepository) ListPasswords(ctx context.Context) (map[string]models.Password, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(r.builder(), passwordsTable, passwordColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "passwordRepository.ListPasswords").Msg("failed to list passwords")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	passwords := make(map[string]models.Password)
	for rows.Next() {
		var (
			p                          models.Password
			favorite, hidden, editable bool
			share                      sql.NullString
		)
		err = rows.Scan(
			&p.ID, &p.Revision, &p.Label, &p.Username, &p.Password, &p.URL, &p.Notes,
			&p.Folder, &favorite, &hidden, &share, &editable,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		p.Favorite, p.Hidden, p.Editable = &favorite, &hidden, &editable
		if share.Valid {
			p.Share = &share.String
		}
		passwords[p.ID] = p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.attachTags(ctx, passwords); err != nil {
		log.Err(err).Str("func", "passwordRepository.ListPasswords").Msg("failed to list password tags")
		return nil, err
	}

	return passwords, nil
}

func (r *passwordRepository) attachTags(ctx context.Context, passwords map[string]models.Password) error {
	query, args, err := buildListPasswordTagsQuery(r.builder())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var passwordID, tagID string
		if err = rows.Scan(&passwordID, &tagID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		p, ok := passwords[passwordID]
		if !ok {
			continue
		}
		p.Tags = append(p.Tags, tagID)
		passwords[passwordID] = p
	}

	return rows.Err()
}

func (r *passwordRepository) CreatePassword(ctx context.Context, password models.Password) (models.Password, error) {
	password.ID = r.ids.Generate()
	password.Revision = r.ids.Generate()
	password.Tags = uniqueTags(password.Tags)

	query, args, err := buildInsertPasswordQuery(r.builder(), password)
	if err != nil {
		return models.Password{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
				return execErr
			}
			return r.insertTags(ctx, tx, password.ID, password.Tags)
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "passwordRepository.CreatePassword").Str("label", password.Label).Msg("failed to insert password")
		return models.Password{}, r.mapWriteError(err)
	}

	return password, nil
}

func (r *passwordRepository) UpdatePassword(ctx context.Context, password models.Password) error {
	password.Revision = r.ids.Generate()
	password.Tags = uniqueTags(password.Tags)

	query, args, err := buildUpdatePasswordQuery(r.builder(), password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := buildDeletePasswordTagsQuery(r.builder(), password.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			res, execErr := tx.ExecContext(ctx, query, args...)
			if execErr != nil {
				return execErr
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return ErrRecordNotFound
			}
			if _, execErr = tx.ExecContext(ctx, deleteQuery, deleteArgs...); execErr != nil {
				return execErr
			}
			return r.insertTags(ctx, tx, password.ID, password.Tags)
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "passwordRepository.UpdatePassword").Str("id", password.ID).Msg("failed to update password")
		if errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("%w: password %s", ErrRecordNotFound, password.ID)
		}
		return r.mapWriteError(err)
	}

	return nil
}

func (r *passwordRepository) insertTags(ctx context.Context, tx *sql.Tx, passwordID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	query, args, err := buildInsertPasswordTagsQuery(r.builder(), passwordID, tags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
