package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-import/internal/converter"
	"github.com/MKhiriev/go-pass-import/internal/i18n"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/mock"
	"github.com/MKhiriev/go-pass-import/internal/utils"
	"github.com/MKhiriev/go-pass-import/models"
)

const testType = "test"

func newTestService(vault *fakeVault, dataset models.ImportDataset, warnings []string, opts ...ImportOption) ImportService {
	registry := converter.NewRegistry()
	registry.Register(testType, converter.ConverterFunc(
		func(ctx context.Context, raw []byte, opts models.ImportOptions) (models.ImportDataset, []string, error) {
			return dataset, warnings, nil
		}))
	return NewImportService(vault, registry, logger.Nop(), opts...)
}

func tags(t ...models.Tag) *[]models.Tag                { return &t }
func folders(f ...models.Folder) *[]models.Folder       { return &f }
func passwords(p ...models.Password) *[]models.Password { return &p }

// progressLog collects progress callbacks.
type progressLog struct {
	mu       sync.Mutex
	statuses []string
	last     [2]int
	records  int
}

func (p *progressLog) sink(processed, total int, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if status != "" {
		p.statuses = append(p.statuses, status)
		return
	}
	p.records++
	p.last = [2]int{processed, total}
}

func TestImport_CreatesEverythingIntoEmptyVault(t *testing.T) {
	vault := newFakeVault()
	dataset := models.ImportDataset{
		Tags: tags(models.Tag{ID: "T1", Label: "work"}),
		Folders: folders(
			models.Folder{ID: "B", Label: "child", Parent: strPtr("A")},
			models.Folder{ID: "A", Label: "parent"},
		),
		Passwords: passwords(models.Password{
			ID: "P1", Label: "mail", Password: "secret", Folder: "B", Tags: []string{"T1", "T-missing"},
		}),
	}
	progress := &progressLog{}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType, models.ImportOptions{}, progress.sink)

	require.True(t, result.OK())
	assert.Empty(t, result.Outcome.Errors)
	assert.Equal(t, 4, result.Outcome.Total)
	assert.Equal(t, 4, result.Outcome.Processed)
	assert.Equal(t, [2]int{4, 4}, progress.last)
	assert.Equal(t, 4, progress.records)
	assert.Equal(t, []string{
		StatusParsing,
		StatusReadingTags, StatusImportingTags,
		StatusReadingFolders, StatusImportingFolders,
		StatusReadingPasswords, StatusImportingPasswords,
	}, progress.statuses)

	tagID := result.Outcome.TagIDs["T1"]
	parentID := result.Outcome.FolderIDs["A"]
	childID := result.Outcome.FolderIDs["B"]
	require.NotEmpty(t, tagID)
	require.NotEmpty(t, parentID)
	require.NotEmpty(t, childID)
	assert.Equal(t, models.DefaultFolderID, result.Outcome.FolderIDs[models.DefaultFolderID])

	assert.Equal(t, parentID, vault.folders[childID].ParentID())
	assert.Equal(t, models.DefaultFolderID, vault.folders[parentID].ParentID())

	passwordID := result.Outcome.PasswordIDs["P1"]
	require.NotEmpty(t, passwordID)
	stored := vault.passwords[passwordID]
	assert.Equal(t, []string{tagID}, stored.Tags)
	assert.Equal(t, childID, stored.Folder)
}

func TestImport_AlwaysSkipExistingNeverWritesExisting(t *testing.T) {
	vault := newFakeVault()
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "stored"}
	vault.folders["F1"] = models.Folder{ID: "F1", Revision: "r1", Label: "stored"}
	vault.passwords["P1"] = models.Password{ID: "P1", Revision: "r1", Label: "stored"}

	dataset := models.ImportDataset{
		Tags:      tags(models.Tag{ID: "T1", Revision: "r9", Label: "incoming"}),
		Folders:   folders(models.Folder{ID: "F1", Revision: "r9", Label: "incoming"}),
		Passwords: passwords(models.Password{ID: "P1", Revision: "r9", Label: "incoming"}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.AlwaysSkipExisting}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 0, vault.writes())
	assert.Equal(t, 3, result.Outcome.Processed)
	assert.Equal(t, "stored", vault.tags["T1"].Label)
	assert.Equal(t, map[string]string{"P1": "P1"}, result.Outcome.PasswordIDs)
}

func TestImport_SkipIfUnchangedPasswordLeavesMapsUntouched(t *testing.T) {
	vault := newFakeVault()
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "tag"}
	vault.folders["F1"] = models.Folder{ID: "F1", Revision: "r1", Label: "folder", Parent: strPtr(models.DefaultFolderID)}
	vault.passwords["P1"] = models.Password{ID: "P1", Revision: "r1", Label: "mail", Folder: "F1", Tags: []string{"T1"}}

	dataset := models.ImportDataset{
		Tags:      tags(models.Tag{ID: "T1", Revision: "r1", Label: "tag"}),
		Folders:   folders(models.Folder{ID: "F1", Revision: "r1", Label: "folder", Parent: strPtr(models.DefaultFolderID)}),
		Passwords: passwords(models.Password{ID: "P1", Revision: "r1", Label: "mail", Folder: "F1", Tags: []string{"T1"}}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.SkipIfUnchanged}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 0, vault.writes())
	assert.Equal(t, 3, result.Outcome.Processed)
	assert.Equal(t, map[string]string{"T1": "T1"}, result.Outcome.TagIDs)
	assert.Equal(t, map[string]string{
		"F1":                   "F1",
		models.DefaultFolderID: models.DefaultFolderID,
	}, result.Outcome.FolderIDs)
	assert.Equal(t, map[string]string{"P1": "P1"}, result.Outcome.PasswordIDs)
}

func TestImport_SkipIfUnchangedIsIdempotent(t *testing.T) {
	vault := newFakeVault()
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "same"}
	vault.tags["T2"] = models.Tag{ID: "T2", Revision: "r1", Label: "changed"}

	dataset := models.ImportDataset{
		Tags: tags(
			models.Tag{ID: "T1", Revision: "r1", Label: "same"},
			models.Tag{ID: "T2", Revision: "r0", Label: "changed"},
		),
	}
	svc := newTestService(vault, dataset, nil)
	opts := models.ImportOptions{Mode: models.SkipIfUnchanged}

	first := svc.Import(context.Background(), nil, testType, opts, nil)
	second := svc.Import(context.Background(), nil, testType, opts, nil)

	require.True(t, first.OK())
	require.True(t, second.OK())
	assert.Equal(t, first.Outcome.TagIDs, second.Outcome.TagIDs)
	assert.Len(t, vault.tags, 2, "no duplicate tags must be created")
	assert.Equal(t, 0, vault.creates)
}

func TestImport_ProcessedEqualsTotalDespiteErrors(t *testing.T) {
	vault := newFakeVault()
	vault.rejectLabel = "broken"
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "broken"}

	dataset := models.ImportDataset{
		Tags: tags(
			models.Tag{ID: "T1", Revision: "r2", Label: "broken"},
			models.Tag{Label: "broken"},
			models.Tag{Label: "fine"},
		),
		Folders:   folders(models.Folder{ID: "F1", Label: "broken"}),
		Passwords: passwords(models.Password{Label: "broken", Password: "x"}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.OverwriteExisting}, nil)

	require.True(t, result.OK())
	assert.True(t, result.Partial())
	assert.Equal(t, 5, result.Outcome.Total)
	assert.Equal(t, 5, result.Outcome.Processed)
	assert.Len(t, result.Outcome.Errors, 4)
	assert.Contains(t, result.Outcome.Errors, fmt.Sprintf(`"%s" in tag "broken".`, errVaultRejected))
	assert.Contains(t, result.Outcome.Errors, fmt.Sprintf(`"%s" in folder "broken".`, errVaultRejected))
	assert.Contains(t, result.Outcome.Errors, fmt.Sprintf(`"%s" in password "broken".`, errVaultRejected))
}

func TestImport_ErrorsAreLocalized(t *testing.T) {
	vault := newFakeVault()
	vault.rejectLabel = "kaputt"
	dataset := models.ImportDataset{Tags: tags(models.Tag{Label: "kaputt"})}

	result := newTestService(vault, dataset, nil, WithTranslator(i18n.NewTranslator("de"))).
		Import(context.Background(), nil, testType, models.ImportOptions{}, nil)

	require.True(t, result.OK())
	assert.Equal(t, []string{fmt.Sprintf(`"%s" im Tag "kaputt".`, errVaultRejected)}, result.Outcome.Errors)
}

func TestImport_LogsUnknownLocaleFallback(t *testing.T) {
	tests := []struct {
		locale  string
		wantLog bool
	}{
		{locale: "pt_BR", wantLog: true},
		{locale: "de", wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			var buf bytes.Buffer
			log := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}

			registry := converter.NewRegistry()
			registry.Register(testType, converter.ConverterFunc(
				func(ctx context.Context, raw []byte, opts models.ImportOptions) (models.ImportDataset, []string, error) {
					return models.ImportDataset{}, nil, nil
				}))
			svc := NewImportService(newFakeVault(), registry, log, WithTranslator(i18n.NewTranslator(tt.locale)))

			result := svc.Import(context.Background(), nil, testType, models.ImportOptions{}, nil)

			require.True(t, result.OK())
			assert.Equal(t, tt.wantLog, strings.Contains(buf.String(), "no message catalog for the configured locale"))
		})
	}
}

func TestImport_SelfParentFolderGoesToRoot(t *testing.T) {
	vault := newFakeVault()
	dataset := models.ImportDataset{
		Folders: folders(models.Folder{ID: "X", Label: "loop", Parent: strPtr("X")}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType, models.ImportOptions{}, nil)

	require.True(t, result.OK())
	require.Empty(t, result.Outcome.Errors)
	created := vault.folders[result.Outcome.FolderIDs["X"]]
	assert.Equal(t, models.DefaultFolderID, created.ParentID())
}

func TestImport_RootFolderIsNeverWritten(t *testing.T) {
	vault := newFakeVault()
	dataset := models.ImportDataset{
		Folders: folders(
			models.Folder{ID: models.DefaultFolderID, Label: "root"},
			models.Folder{ID: "A", Label: "a", Parent: strPtr(models.DefaultFolderID)},
		),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.AlwaysCreateNew}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 2, result.Outcome.Processed)
	assert.Equal(t, 1, vault.creates)
	assert.Equal(t, models.DefaultFolderID, result.Outcome.FolderIDs[models.DefaultFolderID])
}

func TestImport_ChildWaitsForParentInSameBatch(t *testing.T) {
	vault := newFakeVault()
	vault.delay = 5 * time.Millisecond

	// The fake vault rejects folders whose parent does not exist yet, so a
	// child launched together with its parent would fail.
	dataset := models.ImportDataset{
		Folders: folders(
			models.Folder{ID: "A", Label: "a"},
			models.Folder{ID: "B", Label: "b", Parent: strPtr("A")},
			models.Folder{ID: "C", Label: "c", Parent: strPtr("B")},
		),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType, models.ImportOptions{}, nil)

	require.True(t, result.OK())
	assert.Empty(t, result.Outcome.Errors)
	a, b, c := result.Outcome.FolderIDs["A"], result.Outcome.FolderIDs["B"], result.Outcome.FolderIDs["C"]
	assert.Equal(t, a, vault.folders[b].ParentID())
	assert.Equal(t, b, vault.folders[c].ParentID())
}

func TestImport_UnknownTagIsDroppedAndUnknownFolderBecomesRoot(t *testing.T) {
	vault := newFakeVault()
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "known"}

	dataset := models.ImportDataset{
		Passwords: passwords(models.Password{
			Label: "mail", Password: "x", Tags: []string{"T1", "T404"}, Folder: "F404",
		}),
	}
	progress := &progressLog{}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType, models.ImportOptions{}, progress.sink)

	require.True(t, result.OK())
	assert.Contains(t, progress.statuses, StatusAnalyzingTags)
	assert.Contains(t, progress.statuses, StatusAnalyzingFolders)
	assert.Nil(t, result.Outcome.TagIDs)
	assert.Nil(t, result.Outcome.FolderIDs)

	require.Len(t, vault.passwords, 1)
	for _, p := range vault.passwords {
		assert.Equal(t, []string{"T1"}, p.Tags)
		assert.Equal(t, models.DefaultFolderID, p.Folder)
	}
}

func TestImport_SharedAndReadOnlyPasswordsAreSkipped(t *testing.T) {
	share := "share-1"
	vault := newFakeVault()
	vault.passwords["shared"] = models.Password{ID: "shared", Revision: "r1", Label: "shared", Share: &share}
	vault.passwords["readonly"] = models.Password{ID: "readonly", Revision: "r1", Label: "readonly", Editable: boolPtr(false)}
	vault.passwords["own"] = models.Password{ID: "own", Revision: "r1", Label: "own"}

	dataset := models.ImportDataset{
		Passwords: passwords(
			models.Password{ID: "shared", Revision: "r2", Label: "shared"},
			models.Password{ID: "readonly", Revision: "r2", Label: "readonly"},
			models.Password{ID: "own", Revision: "r2", Label: "own"},
		),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.OverwriteExisting, SkipShared: true}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 1, vault.updates)
	assert.Equal(t, 3, result.Outcome.Processed)
	assert.Equal(t, "r1", vault.passwords["shared"].Revision)
	assert.Equal(t, "r1", vault.passwords["readonly"].Revision)
}

func TestImport_SharedPasswordUpdatedWhenNotSkipped(t *testing.T) {
	share := "share-1"
	vault := newFakeVault()
	vault.passwords["shared"] = models.Password{ID: "shared", Revision: "r1", Label: "shared", Share: &share}

	dataset := models.ImportDataset{
		Passwords: passwords(models.Password{ID: "shared", Revision: "r2", Label: "renamed"}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.OverwriteExisting}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 1, vault.updates)
	assert.Equal(t, "renamed", vault.passwords["shared"].Label)
}

func TestImport_MergeFieldsKeepsStoredValues(t *testing.T) {
	vault := newFakeVault()
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "stored", Color: "#00ff00"}

	dataset := models.ImportDataset{
		Tags: tags(models.Tag{ID: "T1", Revision: "r2", Label: "incoming"}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.MergeFields}, nil)

	require.True(t, result.OK())
	assert.Equal(t, "incoming", vault.tags["T1"].Label)
	assert.Equal(t, "#00ff00", vault.tags["T1"].Color)
}

func TestImport_MergeFieldsClearsTagsWhenNoneResolve(t *testing.T) {
	vault := newFakeVault()
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "work"}
	vault.passwords["P1"] = models.Password{ID: "P1", Revision: "r1", Label: "mail", Password: "x", Tags: []string{"T1"}, Notes: "stored"}

	dataset := models.ImportDataset{
		Passwords: passwords(models.Password{ID: "P1", Revision: "r2", Label: "mail", Password: "y", Tags: []string{"GONE"}}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.MergeFields}, nil)

	require.True(t, result.OK())
	stored := vault.passwords["P1"]
	assert.Empty(t, stored.Tags)
	assert.Equal(t, "y", stored.Password)
	assert.Equal(t, "stored", stored.Notes)
}

func TestImport_MergeFieldsKeepsTagsWhenIncomingHasNone(t *testing.T) {
	vault := newFakeVault()
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "work"}
	vault.passwords["P1"] = models.Password{ID: "P1", Revision: "r1", Label: "mail", Password: "x", Tags: []string{"T1"}}

	dataset := models.ImportDataset{
		Passwords: passwords(models.Password{ID: "P1", Revision: "r2", Label: "renamed", Password: "x"}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.MergeFields}, nil)

	require.True(t, result.OK())
	assert.Equal(t, []string{"T1"}, vault.passwords["P1"].Tags)
	assert.Equal(t, "renamed", vault.passwords["P1"].Label)
}

func TestImport_AlwaysCreateNewMapsOldToNew(t *testing.T) {
	vault := newFakeVault()
	vault.passwords["P1"] = models.Password{ID: "P1", Revision: "r1", Label: "mail"}

	dataset := models.ImportDataset{
		Passwords: passwords(models.Password{ID: "P1", Revision: "r1", Label: "mail", Password: "x"}),
	}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.AlwaysCreateNew}, nil)

	require.True(t, result.OK())
	newID := result.Outcome.PasswordIDs["P1"]
	assert.NotEqual(t, "P1", newID)
	assert.Contains(t, vault.passwords, newID)
	assert.Len(t, vault.passwords, 2)
}

func TestImport_InvalidModeIsTreatedAsAlwaysCreateNew(t *testing.T) {
	vault := newFakeVault()
	vault.tags["T1"] = models.Tag{ID: "T1", Revision: "r1", Label: "tag"}
	dataset := models.ImportDataset{Tags: tags(models.Tag{ID: "T1", Revision: "r1", Label: "tag"})}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType,
		models.ImportOptions{Mode: models.ConflictMode(42)}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 1, vault.creates)
	assert.Len(t, vault.tags, 2)
}

func TestImport_TwentyTagsRunInTwoBatches(t *testing.T) {
	vault := newFakeVault()
	vault.delay = 2 * time.Millisecond

	list := make([]models.Tag, 0, 20)
	for i := range 20 {
		list = append(list, models.Tag{Label: fmt.Sprintf("tag-%d", i)})
	}
	dataset := models.ImportDataset{Tags: &list}

	result := newTestService(vault, dataset, nil).Import(context.Background(), nil, testType, models.ImportOptions{}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 20, vault.creates)
	assert.LessOrEqual(t, vault.maxInFlight.Load(), int32(16))

	var first, second int
	for _, done := range vault.startedAfter {
		if done < 16 {
			first++
		} else {
			second++
		}
	}
	assert.Equal(t, 16, first)
	assert.Equal(t, 4, second, "second batch must start after the first settled")
}

func TestImport_ConverterWarningsSeedErrors(t *testing.T) {
	vault := newFakeVault()
	dataset := models.ImportDataset{Tags: tags(models.Tag{Label: "ok"})}

	result := newTestService(vault, dataset, []string{"Skipped tag #2: required field missing."}).
		Import(context.Background(), nil, testType, models.ImportOptions{}, nil)

	require.True(t, result.OK())
	assert.Equal(t, []string{"Skipped tag #2: required field missing."}, result.Outcome.Errors)
	assert.Equal(t, 1, result.Outcome.Processed)
}

func TestImport_UsesRunIDFromContext(t *testing.T) {
	vault := newFakeVault()
	ctx := utils.WithRunID(context.Background(), "run-1")

	result := newTestService(vault, models.ImportDataset{}, nil).Import(ctx, nil, testType, models.ImportOptions{}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 0, result.Outcome.Total)
	assert.Equal(t, 0, result.Outcome.Processed)
}

func TestImport_UnknownInputTypeFailsParse(t *testing.T) {
	result := newTestService(newFakeVault(), models.ImportDataset{}, nil).
		Import(context.Background(), nil, "xml", models.ImportOptions{}, nil)

	assert.False(t, result.OK())
	assert.Equal(t, models.PhaseParse, result.FailedPhase)
	assert.ErrorIs(t, result.Err(), ErrConvertInput)
	assert.ErrorIs(t, result.Err(), converter.ErrUnsupportedImportType)
}

func TestImport_CancelledContextFailsRunningPhase(t *testing.T) {
	vault := newFakeVault()
	dataset := models.ImportDataset{
		Tags:      tags(models.Tag{ID: "t1", Label: "work"}),
		Passwords: passwords(models.Password{ID: "p1", Label: "mail", Password: "x"}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newTestService(vault, dataset, nil).Import(ctx, nil, testType, models.ImportOptions{}, nil)

	assert.False(t, result.OK())
	assert.Equal(t, models.PhaseTags, result.FailedPhase)
	assert.ErrorIs(t, result.Err(), ErrUnableToCreateTags)
	assert.ErrorIs(t, result.Err(), context.Canceled)
	assert.Zero(t, vault.writes())
}

func TestImport_ConverterFailureFailsParse(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultAdapter(ctrl)
	conv := mock.NewMockConverter(ctrl)

	conv.EXPECT().
		Convert(gomock.Any(), []byte("{"), models.ImportOptions{}).
		Return(models.ImportDataset{}, nil, converter.ErrMalformedInput)

	registry := converter.NewRegistry()
	registry.Register("broken", conv)
	svc := NewImportService(vault, registry, logger.Nop())

	result := svc.Import(context.Background(), []byte("{"), "broken", models.ImportOptions{}, nil)

	assert.Equal(t, models.PhaseParse, result.FailedPhase)
	assert.ErrorIs(t, result.Err(), converter.ErrMalformedInput)
	assert.Equal(t, 0, result.Outcome.Processed)
}

func TestImport_PhaseFailuresAreFatal(t *testing.T) {
	errList := errors.New("connection refused")

	tests := []struct {
		name    string
		dataset models.ImportDataset
		setup   func(v *mock.MockVaultAdapterMockRecorder)
		phase   models.ImportPhase
		wantErr error
	}{
		{
			name: "tags",
			dataset: models.ImportDataset{
				Tags:      tags(models.Tag{Label: "t"}),
				Folders:   folders(models.Folder{Label: "f"}),
				Passwords: passwords(models.Password{Label: "p"}),
			},
			setup: func(v *mock.MockVaultAdapterMockRecorder) {
				v.ListTags(gomock.Any()).Return(nil, errList)
			},
			phase:   models.PhaseTags,
			wantErr: ErrUnableToCreateTags,
		},
		{
			name: "folders",
			dataset: models.ImportDataset{
				Folders:   folders(models.Folder{Label: "f"}),
				Passwords: passwords(models.Password{Label: "p"}),
			},
			setup: func(v *mock.MockVaultAdapterMockRecorder) {
				v.ListFolders(gomock.Any()).Return(nil, errList)
			},
			phase:   models.PhaseFolders,
			wantErr: ErrUnableToCreateFolders,
		},
		{
			name: "passwords",
			dataset: models.ImportDataset{
				Tags:      tags(),
				Folders:   folders(),
				Passwords: passwords(models.Password{Label: "p"}),
			},
			setup: func(v *mock.MockVaultAdapterMockRecorder) {
				v.ListTags(gomock.Any()).Return(map[string]models.Tag{}, nil)
				v.ListFolders(gomock.Any()).Return(map[string]models.Folder{}, nil)
				v.ListPasswords(gomock.Any()).Return(nil, errList)
			},
			phase:   models.PhasePasswords,
			wantErr: ErrUnableToCreatePasswords,
		},
		{
			name: "analyzing tags",
			dataset: models.ImportDataset{
				Passwords: passwords(models.Password{Label: "p"}),
			},
			setup: func(v *mock.MockVaultAdapterMockRecorder) {
				v.ListTags(gomock.Any()).Return(nil, errList)
			},
			phase:   models.PhasePasswords,
			wantErr: ErrUnableToCreatePasswords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			vault := mock.NewMockVaultAdapter(ctrl)
			tt.setup(vault.EXPECT())

			registry := converter.NewRegistry()
			dataset := tt.dataset
			registry.Register(testType, converter.ConverterFunc(
				func(context.Context, []byte, models.ImportOptions) (models.ImportDataset, []string, error) {
					return dataset, nil, nil
				}))

			result := NewImportService(vault, registry, logger.Nop()).
				Import(context.Background(), nil, testType, models.ImportOptions{}, nil)

			assert.False(t, result.OK())
			assert.Equal(t, tt.phase, result.FailedPhase)
			assert.ErrorIs(t, result.Err(), tt.wantErr)
			assert.ErrorIs(t, result.Err(), errList)
		})
	}
}

func TestImport_TagCreatedThroughMockVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultAdapter(ctrl)

	gomock.InOrder(
		vault.EXPECT().ListTags(gomock.Any()).Return(map[string]models.Tag{}, nil),
		vault.EXPECT().CreateTag(gomock.Any(), models.Tag{ID: "old", Label: "work"}).
			Return(models.Tag{ID: "new", Revision: "r1", Label: "work"}, nil),
	)

	registry := converter.NewRegistry()
	registry.Register(testType, converter.ConverterFunc(
		func(context.Context, []byte, models.ImportOptions) (models.ImportDataset, []string, error) {
			return models.ImportDataset{Tags: tags(models.Tag{ID: "old", Label: "work"})}, nil, nil
		}))

	result := NewImportService(vault, registry, logger.Nop()).
		Import(context.Background(), nil, testType, models.ImportOptions{}, nil)

	require.True(t, result.OK())
	assert.Equal(t, map[string]string{"old": "new"}, result.Outcome.TagIDs)
}

func TestImportLoggingWrapper_PassesResultThrough(t *testing.T) {
	vault := newFakeVault()
	dataset := models.ImportDataset{Tags: tags(models.Tag{Label: "a"})}
	svc := NewImportLoggingWrapper(logger.Nop()).Wrap(newTestService(vault, dataset, nil))

	result := svc.Import(context.Background(), []byte("x"), testType, models.ImportOptions{}, nil)

	require.True(t, result.OK())
	assert.Equal(t, 1, result.Outcome.Processed)
}
