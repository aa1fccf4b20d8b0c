package service

import (
	"github.com/MKhiriev/go-pass-import/models"
)

// sortFolders orders folders so that every folder follows its parent.
//
// Each pass moves the folders whose parent is root-bound, already known to
// ids or already placed. A pass without progress means the rest depends on
// cycles or missing folders; those are appended in input order and end up
// under the root folder at write time.
func sortFolders(folders []models.Folder, ids *IdentifierMap) []models.Folder {
	out := make([]models.Folder, 0, len(folders))
	placed := make(map[string]struct{}, len(folders))
	remaining := folders

	for len(remaining) > 0 {
		next := make([]models.Folder, 0, len(remaining))
		for _, f := range remaining {
			parent := f.ParentID()
			_, isPlaced := placed[parent]
			if parent == "" || isPlaced || ids.Has(parent) {
				out = append(out, f)
				if f.ID != "" {
					placed[f.ID] = struct{}{}
				}
				continue
			}
			next = append(next, f)
		}

		if len(next) == len(remaining) {
			out = append(out, next...)
			break
		}
		remaining = next
	}

	return out
}

// resolveParent rewrites the parent of f to its vault identifier. Missing,
// unknown and self references point to the root folder.
func resolveParent(f models.Folder, ids *IdentifierMap) models.Folder {
	parent := f.ParentID()
	resolved := models.DefaultFolderID
	if parent != "" && parent != f.ID {
		if mapped, ok := ids.Get(parent); ok {
			resolved = mapped
		}
	}
	f.Parent = &resolved
	return f
}
