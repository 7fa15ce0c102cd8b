// Package archive exposes story files kept inside zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is called for every file Walk visits. The archive argument is the
// path passed to Walk, name is the file name relative to the walked
// directory. If an error is returned, processing stops.
type WalkFunc func(archive, name string, file *zip.File) error

// Walk visits regular files located directly in dir inside the archive (no
// recursion into nested directories), in archive order. Empty dir means
// archive root. Entries with absolute paths or ".." components make the whole
// archive suspicious and are reported as error.
func Walk(archive, dir string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	prefix := strings.Trim(path.Clean("/"+strings.ReplaceAll(dir, `\`, "/")), "/")
	if len(prefix) > 0 {
		prefix += "/"
	}

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		rel := strings.TrimPrefix(name, prefix)
		if len(rel) == 0 || strings.Contains(rel, "/") {
			continue
		}
		if err := walkFn(archive, rel, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile returns content of the archived file refusing anything larger than
// limit bytes.
func ReadFile(f *zip.File, limit int64) ([]byte, error) {
	if limit > 0 && f.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("zip entry %q is too large (%d bytes)", f.Name, f.UncompressedSize64)
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var src io.Reader = r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("zip entry %q is too large", f.Name)
	}
	return data, nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
