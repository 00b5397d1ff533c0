package types

// Category is the name of the folder a file is routed to.
type Category string

const (
	CategoryImages   Category = "images"
	CategoryPDFs     Category = "pdfs"
	CategoryArchives Category = "archives"
	CategoryVideos   Category = "videos"
	CategoryAudio    Category = "audio"
	CategoryOthers   Category = "others"
)

// UnknownExtension is the normalized extension of a file that has none.
const UnknownExtension = "unknown"

// String returns the folder name of the category
func (c Category) String() string {
	return string(c)
}

// CategoryInfo lists the extensions routed to one category
type CategoryInfo struct {
	Category   Category `json:"category"`
	Extensions []string `json:"extensions"`
}
