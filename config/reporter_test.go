package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		r, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReportArchive(t *testing.T) {
	tmpDir := t.TempDir()
	rpt, err := (&ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(tmpDir, "final.log")
	if err := os.WriteFile(stored, []byte("log line"), 0644); err != nil {
		t.Fatal(err)
	}
	rpt.Store("final.log", stored)

	rpt.StoreData("stories/rain.txt", []byte("first"))
	rpt.StoreData("stories/rain.txt", []byte("second"))

	srcDir := filepath.Join(tmpDir, "content")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("story"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := rpt.StoreCopy("content", srcDir); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}

	name := rpt.Name()
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, name)
	if files["final.log"] != "log line" {
		t.Errorf("final.log = %q", files["final.log"])
	}
	if files["stories/rain.txt"] != "first" {
		t.Errorf("stories/rain.txt = %q", files["stories/rain.txt"])
	}
	if files["content/a.txt"] != "story" {
		t.Errorf("content/a.txt = %q", files["content/a.txt"])
	}
	versioned := 0
	for k := range files {
		if strings.HasPrefix(k, "stories/rain.txt-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected versioned duplicate entry, got files %v", files)
	}
	if !strings.Contains(files["MANIFEST"], "final.log") {
		t.Errorf("MANIFEST = %q", files["MANIFEST"])
	}
}

func TestReportRemovesSnapshots(t *testing.T) {
	tmpDir := t.TempDir()
	rpt, err := (&ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(tmpDir, "note.txt")
	if err := os.WriteFile(src, []byte("note"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := rpt.StoreCopy("note", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}

	var temp string
	for _, e := range rpt.entries {
		temp = e.temp
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(temp); !os.IsNotExist(err) {
		t.Errorf("snapshot directory %s still exists", temp)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("original file removed: %v", err)
	}
}

func TestReportNil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", []byte("b"))
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report error = %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() = %q", r.Name())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report error = %v", err)
	}
}

func TestReportNilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file error = %v", err)
	}
}
