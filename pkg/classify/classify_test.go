package classify_test

import (
	"testing"

	"github.com/arthur-debert/sortdl/pkg/classify"
	"github.com/arthur-debert/sortdl/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ext  string
		want types.Category
	}{
		{"png", types.CategoryImages},
		{"jpg", types.CategoryImages},
		{"JPG", types.CategoryImages},
		{"Jpeg", types.CategoryImages},
		{"gif", types.CategoryImages},
		{"pdf", types.CategoryPDFs},
		{"PDF", types.CategoryPDFs},
		{"zip", types.CategoryArchives},
		{"rar", types.CategoryArchives},
		{"7z", types.CategoryArchives},
		{"mp4", types.CategoryVideos},
		{"MKV", types.CategoryVideos},
		{"mov", types.CategoryVideos},
		{"mp3", types.CategoryAudio},
		{"wav", types.CategoryAudio},
		{".jpg", types.CategoryImages},
		{"txt", types.CategoryOthers},
		{"unknown", types.CategoryOthers},
		{"", types.CategoryOthers},
		{"tar.gz", types.CategoryOthers},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, classify.Classify(tt.ext))
		})
	}
}

func TestClassifyCoversEveryTableEntry(t *testing.T) {
	for _, cat := range classify.Categories() {
		for _, ext := range classify.Extensions(cat) {
			assert.Equal(t, cat, classify.Classify(ext), ext)
		}
	}
	assert.Empty(t, classify.Extensions(types.CategoryOthers))
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.jpg", "jpg"},
		{"a.JPG", "jpg"},
		{"/home/u/Downloads/report.Pdf", "pdf"},
		{"archive.tar.gz", "gz"},
		{"b", types.UnknownExtension},
		{"file.", types.UnknownExtension},
		{".bashrc", types.UnknownExtension},
		{".config.json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify.Extension(tt.name))
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name     string
		wantStem string
		wantExt  string
	}{
		{"a.jpg", "a", ".jpg"},
		{"b", "b", ""},
		{".env", ".env", ""},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"file.", "file", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := classify.SplitName(tt.name)
			assert.Equal(t, tt.wantStem, stem)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "Photo.jpg", classify.CanonicalName("Photo.JPG"))
	assert.Equal(t, "a.jpg", classify.CanonicalName("a.jpg"))
	assert.Equal(t, "README", classify.CanonicalName("README"))
	assert.Equal(t, ".Env", classify.CanonicalName(".Env"))
	assert.Equal(t, "Backup.TAR.gz", classify.CanonicalName("Backup.TAR.GZ"))
}

func TestCategoriesOrder(t *testing.T) {
	cats := classify.Categories()
	assert.Equal(t, []types.Category{
		types.CategoryImages,
		types.CategoryPDFs,
		types.CategoryArchives,
		types.CategoryVideos,
		types.CategoryAudio,
		types.CategoryOthers,
	}, cats)

	// Callers get a copy
	cats[0] = "mutated"
	assert.Equal(t, types.CategoryImages, classify.Categories()[0])
}
