package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-import/models"
)

const (
	tagsTable         = "tags"
	foldersTable      = "folders"
	passwordsTable    = "passwords"
	passwordTagsTable = "password_tags"
)

var (
	tagColumns      = []string{"id", "revision", "label", "color", "favorite", "hidden"}
	folderColumns   = []string{"id", "revision", "label", "parent", "favorite", "hidden"}
	passwordColumns = []string{
		"id", "revision", "label", "username", "password", "url", "notes",
		"folder", "favorite", "hidden", "share", "editable",
	}
)

func buildListQuery(b sq.StatementBuilderType, table string, columns []string) (string, []any, error) {
	return b.Select(columns...).From(table).OrderBy("id").ToSql()
}

func buildListPasswordTagsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("password_id", "tag_id").
		From(passwordTagsTable).
		OrderBy("password_id", "position").
		ToSql()
}

func buildInsertTagQuery(b sq.StatementBuilderType, tag models.Tag) (string, []any, error) {
	return b.Insert(tagsTable).
		Columns(tagColumns...).
		Values(tag.ID, tag.Revision, tag.Label, tag.Color, boolValue(tag.Favorite, false), boolValue(tag.Hidden, false)).
		ToSql()
}

func buildUpdateTagQuery(b sq.StatementBuilderType, tag models.Tag) (string, []any, error) {
	return b.Update(tagsTable).
		SetMap(map[string]any{
			"revision": tag.Revision,
			"label":    tag.Label,
			"color":    tag.Color,
			"favorite": boolValue(tag.Favorite, false),
			"hidden":   boolValue(tag.Hidden, false),
		}).
		Where(sq.Eq{"id": tag.ID}).
		ToSql()
}

func buildInsertFolderQuery(b sq.StatementBuilderType, folder models.Folder) (string, []any, error) {
	return b.Insert(foldersTable).
		Columns(folderColumns...).
		Values(folder.ID, folder.Revision, folder.Label, parentValue(folder), boolValue(folder.Favorite, false), boolValue(folder.Hidden, false)).
		ToSql()
}

func buildUpdateFolderQuery(b sq.StatementBuilderType, folder models.Folder) (string, []any, error) {
	return b.Update(foldersTable).
		SetMap(map[string]any{
			"revision": folder.Revision,
			"label":    folder.Label,
			"parent":   parentValue(folder),
			"favorite": boolValue(folder.Favorite, false),
			"hidden":   boolValue(folder.Hidden, false),
		}).
		Where(sq.Eq{"id": folder.ID}).
		ToSql()
}

func buildInsertPasswordQuery(b sq.StatementBuilderType, p models.Password) (string, []any, error) {
	return b.Insert(passwordsTable).
		Columns(passwordColumns...).
		Values(
			p.ID, p.Revision, p.Label, p.Username, p.Password, p.URL, p.Notes,
			folderValue(p.Folder), boolValue(p.Favorite, false), boolValue(p.Hidden, false),
			p.Share, boolValue(p.Editable, true),
		).
		ToSql()
}

// buildUpdatePasswordQuery leaves share and editable untouched: both
// describe the stored record, not the imported one.
func buildUpdatePasswordQuery(b sq.StatementBuilderType, p models.Password) (string, []any, error) {
	return b.Update(passwordsTable).
		SetMap(map[string]any{
			"revision": p.Revision,
			"label":    p.Label,
			"username": p.Username,
			"password": p.Password,
			"url":      p.URL,
			"notes":    p.Notes,
			"folder":   folderValue(p.Folder),
			"favorite": boolValue(p.Favorite, false),
			"hidden":   boolValue(p.Hidden, false),
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
}

func buildDeletePasswordTagsQuery(b sq.StatementBuilderType, passwordID string) (string, []any, error) {
	return b.Delete(passwordTagsTable).Where(sq.Eq{"password_id": passwordID}).ToSql()
}

func buildInsertPasswordTagsQuery(b sq.StatementBuilderType, passwordID string, tags []string) (string, []any, error) {
	insert := b.Insert(passwordTagsTable).Columns("password_id", "tag_id", "position")
	for i, tagID := range tags {
		insert = insert.Values(passwordID, tagID, i)
	}
	return insert.ToSql()
}

func boolValue(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func parentValue(folder models.Folder) string {
	if folder.Parent == nil || *folder.Parent == "" {
		return models.DefaultFolderID
	}
	return *folder.Parent
}

func folderValue(folder string) string {
	if folder == "" {
		return models.DefaultFolderID
	}
	return folder
}

// uniqueTags drops empty and repeated tag ids, keeping the first occurrence.
func uniqueTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, id := range tags {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
