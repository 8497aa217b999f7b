/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package workspace

import (
	"slices"
	"strings"
)

const (
	PythonFolder     = "python"
	PythonFolderName = "bf2/python"
	AdminFolder      = "admin"
	AdminFolderName  = "admin"
)

// Folder is a single workspace folder entry, as stored in a .code-workspace file.
type Folder struct {
	URI  string `json:"path"`
	Name string `json:"name,omitempty"`
}

// Insertion places a folder at a given index of the list.
type Insertion struct {
	At     int
	Folder Folder
}

// Patch describes how to turn one folder list into another.
// Removals refer to indices of the original list and are applied first;
// insertions are then applied in order against the resulting list.
type Patch struct {
	Remove []int
	Insert []Insertion
}

func (p Patch) IsEmpty() bool {
	return len(p.Remove) == 0 && len(p.Insert) == 0
}

// RootFolders returns the folders every server installation contributes to the workspace.
func RootFolders(baseDir string) []Folder {
	return []Folder{
		{URI: JoinPath(baseDir, PythonFolder), Name: PythonFolderName},
		{URI: JoinPath(baseDir, AdminFolder), Name: AdminFolderName},
	}
}

// Sync computes the patch that makes the folder list contain the root folders of baseDir
// and the folder of the active module, without duplicating any entry.
// A folder of a previously active module under the same baseDir is replaced by the new one.
// Applying the patch and calling Sync again with the same arguments yields an empty patch.
func Sync(baseDir string, moduleName string, current []Folder) Patch {
	var patch Patch
	var missing []Folder

	if strings.TrimSpace(moduleName) != "" {
		module := Folder{URI: JoinPath(baseDir, moduleName), Name: moduleName}
		if indexOf(current, module.URI) < 0 {
			missing = append(missing, module)
			if stale := staleModuleIndex(baseDir, current); stale >= 0 {
				patch.Remove = append(patch.Remove, stale)
			}
		}
	}

	for _, root := range RootFolders(baseDir) {
		// A module living in a root folder is already covered by the module entry.
		if indexOf(current, root.URI) < 0 && indexOf(missing, root.URI) < 0 {
			missing = append(missing, root)
		}
	}

	for i, f := range missing {
		patch.Insert = append(patch.Insert, Insertion{At: i, Folder: f})
	}

	return patch
}

// Apply returns a new folder list with the patch applied. The passed list is not modified.
func Apply(current []Folder, patch Patch) []Folder {
	result := slices.Clone(current)

	removals := slices.Clone(patch.Remove)
	slices.Sort(removals)
	removals = slices.Compact(removals)
	for i := len(removals) - 1; i >= 0; i-- {
		idx := removals[i]
		if idx >= 0 && idx < len(result) {
			result = slices.Delete(result, idx, idx+1)
		}
	}

	for _, ins := range patch.Insert {
		at := min(max(ins.At, 0), len(result))
		result = slices.Insert(result, at, ins.Folder)
	}

	return result
}

// SameURI compares two folder URIs ignoring case, separator style and trailing separators.
func SameURI(a, b string) bool {
	return normalizeURI(a) == normalizeURI(b)
}

// JoinPath appends elem to base, keeping the separator style of base.
// Paths reported by the game server are Windows paths even when this program runs elsewhere.
func JoinPath(base string, elem string) string {
	sep := "/"
	if strings.Contains(base, `\`) || (!strings.Contains(base, "/") && strings.Contains(elem, `\`)) {
		sep = `\`
	}

	trimmedBase := strings.TrimRight(base, `\/`)
	elem = strings.Trim(elem, `\/`)
	if sep == `\` {
		elem = strings.ReplaceAll(elem, "/", `\`)
	} else {
		elem = strings.ReplaceAll(elem, `\`, "/")
	}

	switch {
	case elem == "":
		return base
	case base == "":
		return elem
	default:
		return trimmedBase + sep + elem
	}
}

func normalizeURI(uri string) string {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(uri), `\`, "/"))
	if trimmed := strings.TrimRight(n, "/"); trimmed != "" {
		return trimmed
	}
	return n
}

func indexOf(folders []Folder, uri string) int {
	return slices.IndexFunc(folders, func(f Folder) bool {
		return SameURI(f.URI, uri)
	})
}

// Returns the index of the first folder located under baseDir that is neither baseDir itself nor one of its root folders.
func staleModuleIndex(baseDir string, folders []Folder) int {
	base := normalizeURI(baseDir)
	prefix := base
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	roots := RootFolders(baseDir)

	return slices.IndexFunc(folders, func(f Folder) bool {
		uri := normalizeURI(f.URI)
		if uri == base || !strings.HasPrefix(uri, prefix) {
			return false
		}
		return !slices.ContainsFunc(roots, func(root Folder) bool {
			return SameURI(root.URI, f.URI)
		})
	})
}
