package library

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"storyroom/archive"
)

// Story files are small, anything larger is certainly not a story.
const maxStoryFileSize = 4 << 20

type sourceFile struct {
	name string // base name, story id is derived from it
	data []byte
}

// scanner collects story files from configured source: plain directory, zip
// archive or directory inside zip archive. Problems with individual files are
// accumulated and never stop the scan.
type scanner struct {
	extensions []string
	log        *zap.Logger

	files   []sourceFile
	skipped int
	err     error
}

func (s *scanner) eligible(name string) bool {
	ext := filepath.Ext(name)
	return len(strings.TrimSuffix(name, ext)) > 0 && slices.ContainsFunc(s.extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

func (s *scanner) skip(name string, err error) {
	s.log.Warn("Skipping story file", zap.String("file", name), zap.Error(err))
	s.skipped++
	s.err = multierr.Append(s.err, fmt.Errorf("%s: %w", name, err))
}

func (s *scanner) add(name string, data []byte) {
	if kind, ok := binaryKind(data); ok {
		s.skip(name, fmt.Errorf("not a text file (%s)", kind.MIME.Value))
		return
	}
	s.files = append(s.files, sourceFile{name: filepath.Base(name), data: data})
}

// scan resolves source path. Leading part of the path which exists on disk
// is either a directory (then nothing may follow it), an archive (then the
// rest is a directory inside it) or a single story file. Missing source is
// not an error.
func (s *scanner) scan(src string) error {
	if len(src) == 0 {
		s.log.Info("Content source is not configured, no stories will be available")
		return nil
	}

	src = filepath.Clean(src)
	for head := src; ; {
		fi, err := os.Stat(head)
		if err != nil {
			// does not exist, probably path inside archive
			parent := filepath.Dir(head)
			if parent == head || parent == "." {
				break
			}
			head = parent
			continue
		}

		rest := strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
		switch {
		case fi.IsDir():
			if len(rest) != 0 {
				s.log.Info("Content source not found", zap.String("source", src), zap.String("missing", rest))
				return nil
			}
			return s.scanDir(head)
		case !fi.Mode().IsRegular():
			return fmt.Errorf("unexpected content source mode for (%s)", head)
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check content source type: %w", err)
		}
		if arc {
			return s.scanArchive(head, filepath.ToSlash(rest))
		}
		if len(rest) == 0 && s.eligible(head) {
			s.readFile(head)
			return nil
		}
		s.log.Info("Content source is not usable", zap.String("source", src))
		return nil
	}

	s.log.Info("Content source not found, no stories will be available", zap.String("source", src))
	return nil
}

func (s *scanner) readFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		s.skip(path, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxStoryFileSize+1))
	if err != nil {
		s.skip(path, err)
		return
	}
	if len(data) > maxStoryFileSize {
		s.skip(path, fmt.Errorf("file is too large"))
		return
	}
	s.add(path, data)
}

// scanDir does not descend into subdirectories.
func (s *scanner) scanDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read content directory: %w", err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() || !s.eligible(e.Name()) {
			continue
		}
		s.readFile(filepath.Join(dir, e.Name()))
	}
	s.sort()
	return nil
}

func (s *scanner) scanArchive(path, dir string) error {
	err := archive.Walk(path, dir, func(arc, name string, f *zip.File) error {
		if !s.eligible(name) {
			return nil
		}
		data, err := archive.ReadFile(f, maxStoryFileSize)
		if err != nil {
			s.skip(arc+":"+f.Name, err)
			return nil
		}
		s.add(name, data)
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to read content archive: %w", err)
	}
	s.sort()
	return nil
}

// sort puts files in natural order, "story-2" goes before "story-10".
func (s *scanner) sort() {
	slices.SortStableFunc(s.files, func(a, b sourceFile) int {
		switch {
		case natural.Less(a.name, b.name):
			return -1
		case natural.Less(b.name, a.name):
			return 1
		}
		return 0
	})
}
