package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/converter"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/models"
)

const exportJSON = `{
	"tags": [{"id": "t1", "revision": "r1", "label": "work", "color": "#ff0000"}],
	"folders": [
		{"id": "f2", "revision": "r1", "label": "child", "parent": "f1"},
		{"id": "f1", "revision": "r1", "label": "parent"}
	],
	"passwords": [
		{"id": "p1", "revision": "r1", "label": "mail", "password": "secret", "folder": "f2", "tags": ["t1", "gone"]},
		{"id": "p2", "label": "no password"}
	]
}`

func newLocalApp(t *testing.T) *App {
	t.Helper()
	storage := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "vault.db")}}
	importCfg := config.Import{BatchSize: 4, Locale: "en"}

	a, err := New(context.Background(), config.Adapter{}, storage, importCfg,
		models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNew_LocalVaultImportsExport(t *testing.T) {
	a := newLocalApp(t)
	ctx := context.Background()
	assert.Equal(t, "sqlite3", a.Vault.Kind)
	assert.Contains(t, a.Converters.Types(), converter.TypeJSON)

	result := a.Services.ImportService.Import(ctx, []byte(exportJSON), converter.TypeJSON, models.ImportOptions{}, nil)

	require.True(t, result.OK(), "%v", result.Err())
	assert.Equal(t, 4, result.Outcome.Total)
	assert.Equal(t, 4, result.Outcome.Processed)
	assert.Equal(t, []string{"Skipped password #2: required field missing."}, result.Outcome.Errors)

	tags, err := a.Vault.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	folders, err := a.Vault.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	parentID := result.Outcome.FolderIDs["f1"]
	childID := result.Outcome.FolderIDs["f2"]
	assert.Equal(t, models.DefaultFolderID, folders[parentID].ParentID())
	assert.Equal(t, parentID, folders[childID].ParentID())

	passwords, err := a.Vault.ListPasswords(ctx)
	require.NoError(t, err)
	require.Len(t, passwords, 1)
	stored := passwords[result.Outcome.PasswordIDs["p1"]]
	assert.Equal(t, childID, stored.Folder)
	assert.Equal(t, []string{result.Outcome.TagIDs["t1"]}, stored.Tags)
	assert.True(t, stored.IsEditable())
	assert.False(t, stored.IsShared())
}

func TestNew_LocalVaultSecondRunSkipsUnchanged(t *testing.T) {
	a := newLocalApp(t)
	ctx := context.Background()

	first := a.Services.ImportService.Import(ctx, []byte(`{"tags":[{"label":"work"}]}`), converter.TypeJSON, models.ImportOptions{}, nil)
	require.True(t, first.OK())

	// Re-import what the vault now holds.
	stored, err := a.Vault.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	var tag models.Tag
	for _, tg := range stored {
		tag = tg
	}
	raw := []byte(`{"tags":[{"id":"` + tag.ID + `","revision":"` + tag.Revision + `","label":"work"}]}`)

	second := a.Services.ImportService.Import(ctx, raw, converter.TypeJSON, models.ImportOptions{Mode: models.SkipIfUnchanged}, nil)
	require.True(t, second.OK())
	assert.Equal(t, map[string]string{tag.ID: tag.ID}, second.Outcome.TagIDs)

	after, err := a.Vault.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, tag.Revision, after[tag.ID].Revision)
}

func TestOpenVault_Remote(t *testing.T) {
	vault, err := OpenVault(context.Background(),
		config.Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: config.DefaultRequestTimeout},
		config.Storage{}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "http", vault.Kind)
	assert.NoError(t, vault.Close())
}

func TestOpenVault_NoTarget(t *testing.T) {
	vault, err := OpenVault(context.Background(), config.Adapter{}, config.Storage{}, logger.Nop())

	assert.Nil(t, vault)
	assert.Error(t, err)
}

func TestNew_EmptyBuildVersion(t *testing.T) {
	storage := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "vault.db")}}

	a, err := New(context.Background(), config.Adapter{}, storage, config.Import{},
		models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, a)
	assert.Error(t, err)
}
