package library

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"storyroom/common"
	"storyroom/config"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func newLibrary(t *testing.T, source string) *Library {
	t.Helper()
	cfg := &config.ContentConfig{
		Source:        source,
		Extensions:    []string{".txt"},
		ExcerptLength: 100,
		Emotion:       common.EmotionModeCyclic,
	}
	return New(cfg, nil, zaptest.NewLogger(t))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"story-10.txt":      "== Ten ==\nBody ten",
		"story-2.txt":       "== Two ==\n== room: rain ==\nBody two",
		"story-1.txt":       "Body one without title",
		"LOUD.TXT":          "== Loud ==\nBody",
		"notes.md":          "not a story",
		"drafts/nested.txt": "== Nested ==\nignored",
		".txt":              "no stem",
	})

	lib := newLibrary(t, dir)
	stories := lib.Stories()

	ids := make([]string, 0, len(stories))
	for _, s := range stories {
		ids = append(ids, s.ID)
	}
	want := []string{"LOUD", "story-1", "story-2", "story-10"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}

	for i, s := range stories {
		if s.Emotion != common.EmotionValues()[i%6] {
			t.Errorf("story %s emotion = %s, want %s", s.ID, s.Emotion, common.EmotionValues()[i%6])
		}
	}

	one, err := lib.ByID("story-1")
	if err != nil {
		t.Fatalf("ByID() error = %v", err)
	}
	if one.Title != "Story 1" {
		t.Errorf("fallback title = %q, want %q", one.Title, "Story 1")
	}

	two, _ := lib.ByID("story-2")
	if two.RoomID != "rain" || two.Title != "Two" {
		t.Errorf("story-2 = %+v", two)
	}

	rpt := lib.Report()
	if rpt.Loaded != 4 || rpt.Skipped != 0 || rpt.Err != nil {
		t.Errorf("report = %+v", rpt)
	}
}

func TestLoadIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "== A ==\nBody"})

	lib := newLibrary(t, dir)
	first := lib.Stories()
	second := lib.Stories()
	if len(first) != 1 || &first[0] != &second[0] || first[0] != second[0] {
		t.Error("second load returned different stories")
	}
	md1, md2 := lib.Metadata(), lib.Metadata()
	if &md1[0] != &md2[0] {
		t.Error("metadata recomputed")
	}
	if n := lib.loads.Load(); n != 1 {
		t.Errorf("content loaded %d times, want 1", n)
	}
}

func TestConcurrentFirstLoad(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "A", "b.txt": "B"})

	lib := newLibrary(t, dir)
	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			if got := len(lib.Stories()); got != 2 {
				t.Errorf("got %d stories", got)
			}
		})
	}
	wg.Wait()
	if n := lib.loads.Load(); n != 1 {
		t.Errorf("content loaded %d times, want 1", n)
	}
}

func TestMissingSource(t *testing.T) {
	for _, src := range []string{filepath.Join(t.TempDir(), "nothing"), ""} {
		lib := newLibrary(t, src)
		if got := lib.Stories(); len(got) != 0 {
			t.Errorf("source %q: got %d stories", src, len(got))
		}
		if got := lib.Metadata(); len(got) != 0 {
			t.Errorf("source %q: got %d metadata", src, len(got))
		}
		if rpt := lib.Report(); rpt.Err != nil {
			t.Errorf("source %q: report error = %v", src, rpt.Err)
		}
	}
}

func TestBadFilesSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt":     "== Good ==\nBody",
		"image.txt": "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR",
		"z.txt":     "== Also good ==\nBody",
	})

	lib := newLibrary(t, dir)
	if got := len(lib.Stories()); got != 2 {
		t.Fatalf("got %d stories, want 2", got)
	}
	rpt := lib.Report()
	if rpt.Skipped != 1 || rpt.Err == nil {
		t.Errorf("report = %+v", rpt)
	}
	// emotion positions count loaded stories only
	z, _ := lib.ByID("z")
	if z.Emotion != common.EmotionNostalgia {
		t.Errorf("z emotion = %s", z.Emotion)
	}
}

func TestEncodings(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"bom.txt":   "\xEF\xBB\xBF== With BOM ==\nBody",
		"latin.txt": "== Caf\xe9 ==\nBody",
		"utf16.txt": string([]byte{0xFF, 0xFE, '=', 0, '=', 0, ' ', 0, 'U', 0, ' ', 0, '=', 0, '=', 0}),
	})

	lib := newLibrary(t, dir)
	tests := map[string]string{"bom": "With BOM", "latin": "Café", "utf16": "U"}
	for id, title := range tests {
		s, err := lib.ByID(id)
		if err != nil {
			t.Errorf("ByID(%q) error = %v", id, err)
			continue
		}
		if s.Title != title {
			t.Errorf("%s title = %q, want %q", id, s.Title, title)
		}
	}
}

func TestZipSource(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "gallery.zip")
	zf, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(zf)
	for name, data := range map[string]string{
		"stories/rain.txt":      "== Rain ==\n== room: rain ==\nDrops",
		"stories/window.txt":    "== Window ==\nGlass",
		"stories/old/draft.txt": "ignored",
		"readme.txt":            "ignored too",
	} {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(data))
	}
	w.Close()
	zf.Close()

	lib := newLibrary(t, filepath.Join(zipPath, "stories"))
	md := lib.Metadata()
	if len(md) != 2 || md[0].ID != "rain" || md[1].ID != "window" {
		t.Fatalf("metadata = %+v", md)
	}
	if md[0].Excerpt != "Drops..." {
		t.Errorf("excerpt = %q", md[0].Excerpt)
	}

	root := newLibrary(t, zipPath)
	if got := root.Stories(); len(got) != 1 || got[0].ID != "readme" {
		t.Errorf("archive root stories = %v", got)
	}
}

func TestSingleFileSource(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"only.txt": "== Only ==\nBody"})

	lib := newLibrary(t, filepath.Join(dir, "only.txt"))
	if got := lib.Stories(); len(got) != 1 || got[0].Title != "Only" {
		t.Errorf("stories = %v", got)
	}
}

func TestLookups(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt": "== A ==\n== room: rain ==\nBody",
		"b.txt": "== B ==\nBody",
		"c.txt": "== C ==\n== room: rain ==\nBody",
	})
	lib := newLibrary(t, dir)

	if _, err := lib.ByID("missing"); !errors.Is(err, ErrStoryNotFound) {
		t.Errorf("ByID(missing) error = %v, want ErrStoryNotFound", err)
	}

	rain := lib.InRoom("rain")
	if len(rain) != 2 || rain[0].ID != "a" || rain[1].ID != "c" {
		t.Errorf("InRoom(rain) = %+v", rain)
	}
	if got := lib.InRoom("nowhere"); got == nil || len(got) != 0 {
		t.Errorf("InRoom(nowhere) = %#v", got)
	}
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "A"})

	lib := newLibrary(t, dir)
	if got := len(lib.Stories()); got != 1 {
		t.Fatalf("got %d stories", got)
	}

	writeFiles(t, dir, map[string]string{"b.txt": "B"})
	if got := len(lib.Stories()); got != 1 {
		t.Errorf("cache not used, got %d stories", got)
	}

	lib.Reset()
	if got := len(lib.Stories()); got != 2 {
		t.Errorf("after Reset got %d stories, want 2", got)
	}
	if n := lib.loads.Load(); n != 2 {
		t.Errorf("content loaded %d times, want 2", n)
	}
}

func TestResetDuringLoad(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "A"})

	lib := newLibrary(t, dir)
	lib.loaded = func() {
		lib.loaded = nil
		writeFiles(t, dir, map[string]string{"b.txt": "B"})
		lib.Reset()
	}

	// caller gets what was loaded, but it is not kept
	if got := len(lib.Stories()); got != 1 {
		t.Fatalf("got %d stories", got)
	}
	if got := len(lib.Stories()); got != 2 {
		t.Errorf("stale content survived Reset, got %d stories, want 2", got)
	}
	if n := lib.loads.Load(); n != 2 {
		t.Errorf("content loaded %d times, want 2", n)
	}
}

func TestKeywordEmotions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"calm.txt": "== Evening ==\nA calm, quiet and gentle evening."})

	cfg := &config.ContentConfig{Source: dir, Extensions: []string{".txt"}, ExcerptLength: 100, Emotion: common.EmotionModeKeywords}
	lib := New(cfg, nil, zaptest.NewLogger(t))
	s, err := lib.ByID("calm")
	if err != nil {
		t.Fatal(err)
	}
	if s.Emotion != common.EmotionSerenity {
		t.Errorf("emotion = %s, want serenity", s.Emotion)
	}
}
