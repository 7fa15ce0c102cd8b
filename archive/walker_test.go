package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func makeArchive(t *testing.T, files map[string]string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "stories.zip")

	zf, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zf.Close()

	w := zip.NewWriter(zf)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(files[name])); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return zipPath
}

func collect(t *testing.T, archive, dir string) []string {
	t.Helper()
	var visited []string
	err := Walk(archive, dir, func(a, name string, f *zip.File) error {
		if a != archive {
			t.Errorf("archive = %s, want %s", a, archive)
		}
		visited = append(visited, name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return visited
}

func TestWalk(t *testing.T) {
	zipPath := makeArchive(t, map[string]string{
		"rain.txt":               "root story",
		"gallery/window.txt":     "window",
		"gallery/books.txt":      "books",
		"gallery/drafts/old.txt": "nested",
		"other/x.txt":            "x",
	})

	tests := []struct {
		name string
		dir  string
		want []string
	}{
		{name: "root", dir: "", want: []string{"rain.txt"}},
		{name: "directory", dir: "gallery", want: []string{"books.txt", "window.txt"}},
		{name: "directory with slashes", dir: "/gallery/", want: []string{"books.txt", "window.txt"}},
		{name: "nested", dir: "gallery/drafts", want: []string{"old.txt"}},
		{name: "missing", dir: "nothing", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, zipPath, tt.dir)
			if !slices.Equal(got, tt.want) {
				t.Errorf("visited = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkStopsOnError(t *testing.T) {
	zipPath := makeArchive(t, map[string]string{"a.txt": "a", "b.txt": "b"})

	stop := errors.New("stop")
	count := 0
	err := Walk(zipPath, "", func(_, _ string, _ *zip.File) error {
		count++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
	if count != 1 {
		t.Errorf("walkFn called %d times, want 1", count)
	}
}

func TestWalkInvalidArchive(t *testing.T) {
	t.Run("nonexistent", func(t *testing.T) {
		if err := Walk("/nonexistent/archive.zip", "", nil); err == nil {
			t.Error("expected error for nonexistent archive")
		}
	})

	t.Run("not a zip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.zip")
		if err := os.WriteFile(path, []byte("not a zip file"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := Walk(path, "", nil); err == nil {
			t.Error("expected error for invalid zip")
		}
	})

	t.Run("path traversal", func(t *testing.T) {
		zipPath := makeArchive(t, map[string]string{"../evil.txt": "x"})
		err := Walk(zipPath, "", func(_, _ string, _ *zip.File) error { return nil })
		if err == nil {
			t.Error("expected error for unsafe entry")
		}
	})
}

func TestReadFile(t *testing.T) {
	zipPath := makeArchive(t, map[string]string{"a.txt": "hello story"})

	var files []*zip.File
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	files = r.File

	data, err := ReadFile(files[0], 1024)
	if err != nil || string(data) != "hello story" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}
	if _, err := ReadFile(files[0], 4); err == nil {
		t.Error("expected error for file over limit")
	}
	if data, err := ReadFile(files[0], 0); err != nil || len(data) != 11 {
		t.Errorf("ReadFile() without limit = %q, %v", data, err)
	}
}

func TestIsSafePath(t *testing.T) {
	tests := map[string]bool{
		"a/b.txt":        true,
		"b.txt":          true,
		"/etc/passwd":    false,
		`\windows`:       false,
		"a/../../b.txt":  false,
		"a/..b/file.txt": true,
	}
	for in, want := range tests {
		if got := isSafePath(in); got != want {
			t.Errorf("isSafePath(%q) = %v, want %v", in, got, want)
		}
	}
}
