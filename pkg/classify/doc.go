// Package classify maps file extensions to the category folder a file is
// routed to.
//
// The table is fixed: images, pdfs, archives, videos and audio each own a
// handful of extensions and everything else, including files with no
// extension at all, lands in others. Lookups are case-insensitive, so
// photo.JPG and photo.jpg end up side by side.
package classify
