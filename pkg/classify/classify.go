package classify

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/sortdl/pkg/types"
)

// table holds every recognized extension, lower-cased and without the dot.
var table = map[string]types.Category{
	"png":  types.CategoryImages,
	"jpg":  types.CategoryImages,
	"jpeg": types.CategoryImages,
	"gif":  types.CategoryImages,

	"pdf": types.CategoryPDFs,

	"zip": types.CategoryArchives,
	"rar": types.CategoryArchives,
	"7z":  types.CategoryArchives,

	"mp4": types.CategoryVideos,
	"mkv": types.CategoryVideos,
	"mov": types.CategoryVideos,

	"mp3": types.CategoryAudio,
	"wav": types.CategoryAudio,
}

// categories in display order
var categories = []types.Category{
	types.CategoryImages,
	types.CategoryPDFs,
	types.CategoryArchives,
	types.CategoryVideos,
	types.CategoryAudio,
	types.CategoryOthers,
}

// Classify returns the category for an extension. A leading dot is
// tolerated and case is ignored. Unmatched input yields CategoryOthers.
func Classify(ext string) types.Category {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if cat, ok := table[ext]; ok {
		return cat
	}
	return types.CategoryOthers
}

// Extension returns the normalized extension of a file name: lower-cased,
// without the leading dot. Names without a usable extension ("b", "file.",
// ".bashrc") normalize to types.UnknownExtension.
func Extension(name string) string {
	ext := extOf(filepath.Base(name))
	if len(ext) <= 1 {
		return types.UnknownExtension
	}
	return strings.ToLower(ext[1:])
}

// SplitName splits a file name into stem and extension (with its dot).
// A dot-file with no further dot has no extension: ".env" -> (".env", "").
func SplitName(name string) (stem, ext string) {
	ext = extOf(name)
	return strings.TrimSuffix(name, ext), ext
}

// CanonicalName lower-cases the extension of a file name and keeps the
// stem: "Photo.JPG" -> "Photo.jpg". Files routed by a case-insensitive
// lookup then also collide case-insensitively in their category folder.
func CanonicalName(name string) string {
	stem, ext := SplitName(name)
	return stem + strings.ToLower(ext)
}

// Categories returns every category in display order
func Categories() []types.Category {
	out := make([]types.Category, len(categories))
	copy(out, categories)
	return out
}

// Extensions returns the sorted extensions routed to a category. Others has
// none since it is the fallback.
func Extensions(cat types.Category) []string {
	var exts []string
	for ext, c := range table {
		if c == cat {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// extOf is filepath.Ext except that a leading dot starts a hidden name,
// not an extension.
func extOf(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}
