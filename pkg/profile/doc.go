// Package profile owns one save profile: its metadata document, its
// slot archive directories, and the single live save-file set the game
// reads and writes directly.
//
// Every mutating operation runs as {lock profile -> load metadata ->
// file work -> mutate metadata -> persist} and the metadata write only
// happens after the file work succeeded, so the persisted document never
// gets ahead of the file-system state it describes.
package profile
