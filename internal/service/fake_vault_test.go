package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-import/models"
)

var errVaultRejected = errors.New("vault rejected record")

// fakeVault is an in-memory vault. It assigns identifiers "<kind>-<n>" and
// revisions "rev-<n>" and tracks how many writes are in flight.
type fakeVault struct {
	mu        sync.Mutex
	seq       int
	tags      map[string]models.Tag
	folders   map[string]models.Folder
	passwords map[string]models.Password

	creates int
	updates int

	// rejectLabel makes any write of a record with this label fail.
	rejectLabel string
	// delay keeps every write in flight for a while.
	delay time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	completed   atomic.Int32
	// startedAfter records, per write, how many writes had completed when
	// it started.
	startedAfter []int
}

func newFakeVault() *fakeVault {
	return &fakeVault{
		tags:      make(map[string]models.Tag),
		folders:   make(map[string]models.Folder),
		passwords: make(map[string]models.Password),
	}
}

func (v *fakeVault) enter() func() {
	n := v.inFlight.Add(1)
	for {
		peak := v.maxInFlight.Load()
		if n <= peak || v.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}
	v.mu.Lock()
	v.startedAfter = append(v.startedAfter, int(v.completed.Load()))
	v.mu.Unlock()

	if v.delay > 0 {
		time.Sleep(v.delay)
	}
	return func() {
		v.inFlight.Add(-1)
		v.completed.Add(1)
	}
}

func (v *fakeVault) nextID(kind string) (string, string) {
	v.seq++
	return fmt.Sprintf("%s-%d", kind, v.seq), fmt.Sprintf("rev-%d", v.seq)
}

func (v *fakeVault) writes() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.creates + v.updates
}

func (v *fakeVault) ListTags(ctx context.Context) (map[string]models.Tag, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]models.Tag, len(v.tags))
	for k, t := range v.tags {
		out[k] = t
	}
	return out, nil
}

func (v *fakeVault) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	defer v.enter()()
	v.mu.Lock()
	defer v.mu.Unlock()
	if tag.Label == v.rejectLabel {
		return models.Tag{}, errVaultRejected
	}
	v.creates++
	tag.ID, tag.Revision = v.nextID("tag")
	v.tags[tag.ID] = tag
	return tag, nil
}

func (v *fakeVault) UpdateTag(ctx context.Context, tag models.Tag) error {
	defer v.enter()()
	v.mu.Lock()
	defer v.mu.Unlock()
	if tag.Label == v.rejectLabel {
		return errVaultRejected
	}
	v.updates++
	_, tag.Revision = v.nextID("tag")
	v.tags[tag.ID] = tag
	return nil
}

func (v *fakeVault) ListFolders(ctx context.Context) (map[string]models.Folder, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]models.Folder, len(v.folders))
	for k, f := range v.folders {
		out[k] = f
	}
	return out, nil
}

func (v *fakeVault) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	defer v.enter()()
	v.mu.Lock()
	defer v.mu.Unlock()
	if folder.Label == v.rejectLabel {
		return models.Folder{}, errVaultRejected
	}
	if p := folder.ParentID(); p != models.DefaultFolderID {
		if _, ok := v.folders[p]; !ok {
			return models.Folder{}, fmt.Errorf("parent %q does not exist", p)
		}
	}
	v.creates++
	folder.ID, folder.Revision = v.nextID("folder")
	v.folders[folder.ID] = folder
	return folder, nil
}

func (v *fakeVault) UpdateFolder(ctx context.Context, folder models.Folder) error {
	defer v.enter()()
	v.mu.Lock()
	defer v.mu.Unlock()
	if folder.Label == v.rejectLabel {
		return errVaultRejected
	}
	v.updates++
	_, folder.Revision = v.nextID("folder")
	v.folders[folder.ID] = folder
	return nil
}

func (v *fakeVault) ListPasswords(ctx context.Context) (map[string]models.Password, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]models.Password, len(v.passwords))
	for k, p := range v.passwords {
		out[k] = p
	}
	return out, nil
}

func (v *fakeVault) CreatePassword(ctx context.Context, password models.Password) (models.Password, error) {
	defer v.enter()()
	v.mu.Lock()
	defer v.mu.Unlock()
	if password.Label == v.rejectLabel {
		return models.Password{}, errVaultRejected
	}
	v.creates++
	password.ID, password.Revision = v.nextID("password")
	v.passwords[password.ID] = password
	return password, nil
}

func (v *fakeVault) UpdatePassword(ctx context.Context, password models.Password) error {
	defer v.enter()()
	v.mu.Lock()
	defer v.mu.Unlock()
	if password.Label == v.rejectLabel {
		return errVaultRejected
	}
	v.updates++
	current := v.passwords[password.ID]
	_, password.Revision = v.nextID("password")
	password.Share, password.Editable = current.Share, current.Editable
	v.passwords[password.ID] = password
	return nil
}
