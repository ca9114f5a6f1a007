// Package archive creates and extracts the zip containers savekeeper
// uses for active-save snapshots, manual backups, and mod packages.
//
// Archives are always written to a fresh file in one shot, never as an
// in-place rewrite of a file being read, so a failed write cannot
// corrupt an existing archive.
package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// Snapshot archives the top-level files of dir that match include into a
// zip written at destPath, overwriting any previous archive there.
// Entry names are the bare file names.
func Snapshot(fsys types.FS, dir string, include func(name string) bool, destPath string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to list %s", dir)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		if entry.IsDir() || !include(entry.Name()) {
			continue
		}
		data, err := fsys.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", entry.Name())
		}
		w, err := zw.Create(entry.Name())
		if err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to add %s", entry.Name())
		}
		if _, err := w.Write(data); err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to write %s", entry.Name())
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrArchiveWrite, "failed to finalize archive")
	}

	if err := fsys.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", filepath.Dir(destPath))
	}
	if err := fsys.WriteFile(destPath, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to write %s", destPath)
	}
	return nil
}

// Extract unpacks every file entry of the archive at archivePath into
// destDir, creating parent directories as needed.
func Extract(fsys types.FS, archivePath, destDir string) error {
	r, err := Open(fsys, archivePath)
	if err != nil {
		return err
	}
	for _, f := range r.Files() {
		data, err := f.Content()
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, filepath.FromSlash(f.Path))
		if err := fsys.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", filepath.Dir(dest))
		}
		if err := fsys.WriteFile(dest, data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", dest)
		}
	}
	return nil
}

// Reader gives access to the file entries of an opened archive.
type Reader struct {
	files []File
}

// File is one normalized file entry.
type File struct {
	// Path is the entry path relative to the extraction root, slash
	// separated regardless of how the archive was packed.
	Path string

	zf *zip.File
}

// Open reads the archive at path. Directory entries and entries that
// escape the extraction root are dropped.
func Open(fsys types.FS, archivePath string) (*Reader, error) {
	data, err := fsys.ReadFile(archivePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveRead, "failed to read %s", archivePath)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveRead, "failed to open %s", archivePath)
	}

	r := &Reader{}
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		rel, ok := normalizeEntryPath(zf.Name)
		if !ok {
			continue
		}
		r.files = append(r.files, File{Path: rel, zf: zf})
	}
	return r, nil
}

// Files returns the archive's file entries in archive order.
func (r *Reader) Files() []File { return r.files }

// Content returns the entry's uncompressed bytes.
func (f File) Content() ([]byte, error) {
	rc, err := f.zf.Open()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveRead, "failed to open entry %s", f.Path)
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveRead, "failed to read entry %s", f.Path)
	}
	return data, nil
}

// normalizeEntryPath converts an archive entry name to a clean,
// slash-separated relative path. Entries using backslash separators are
// accepted; absolute paths and paths escaping the root are rejected.
func normalizeEntryPath(name string) (string, bool) {
	rel := strings.ReplaceAll(name, "\\", "/")
	rel = strings.TrimPrefix(rel, "./")
	cleaned := path.Clean(rel)
	if cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, "../") || strings.HasPrefix(cleaned, "/") {
		return "", false
	}
	return cleaned, true
}

// WriteFiles builds a zip at destPath from an in-memory file map, with
// entries in name order. Used by tests to fabricate save sets and mod
// packages.
func WriteFiles(fsys types.FS, destPath string, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to add %s", name)
		}
		if _, err := w.Write(files[name]); err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to write %s", name)
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrArchiveWrite, "failed to finalize archive")
	}
	if err := fsys.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", filepath.Dir(destPath))
	}
	if err := fsys.WriteFile(destPath, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to write %s", destPath)
	}
	return nil
}
