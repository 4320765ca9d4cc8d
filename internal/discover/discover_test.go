package discover

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"sort"
	"testing"

	"pickpack/internal/logging"
)

// newWalkEngine returns an engine whose git listing always fails, forcing the
// filesystem walk path.
func newWalkEngine() *Engine {
	return &Engine{
		listGit: func(string) ([]string, error) { return nil, errors.New("not a repository") },
		log:     logging.Nop(),
	}
}

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("content\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover_WalkFindsAllFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.txt", "sub/b.txt", "sub/deep/c.txt")

	got := newWalkEngine().Discover(root, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(got), got)
	}

	sort.Strings(got)
	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.txt"),
		filepath.Join(root, "sub", "deep", "c.txt"),
	}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_PrefersGitListing(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "walked.txt")

	e := &Engine{
		listGit: func(r string) ([]string, error) {
			return []string{filepath.Join(r, "tracked.go")}, nil
		},
		log: logging.Nop(),
	}

	got := e.Discover(root, nil)
	if len(got) != 1 || got[0] != filepath.Join(root, "tracked.go") {
		t.Errorf("expected git listing to win, got %v", got)
	}
}

func TestDiscover_IgnorePatternAppliesToBothSources(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "keep.go", "drop.log")
	ignore := regexp.MustCompile(`\.log$`)

	// Walk source
	got := newWalkEngine().Discover(root, ignore)
	if len(got) != 1 || filepath.Base(got[0]) != "keep.go" {
		t.Errorf("walk source: got %v, want only keep.go", got)
	}

	// Git source
	e := &Engine{
		listGit: func(r string) ([]string, error) {
			return []string{filepath.Join(r, "keep.go"), filepath.Join(r, "drop.log")}, nil
		},
		log: logging.Nop(),
	}
	got = e.Discover(root, ignore)
	if len(got) != 1 || filepath.Base(got[0]) != "keep.go" {
		t.Errorf("git source: got %v, want only keep.go", got)
	}
}

func TestDiscover_EmptyRootIsNotAnError(t *testing.T) {
	got := newWalkEngine().Discover(t.TempDir(), nil)
	if len(got) != 0 {
		t.Errorf("expected empty candidate set, got %v", got)
	}
}

func TestDiscover_MissingRootYieldsEmpty(t *testing.T) {
	got := newWalkEngine().Discover("/nonexistent/path", nil)
	if len(got) != 0 {
		t.Errorf("expected empty candidate set for missing root, got %v", got)
	}
}

func TestDiscover_SkipsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFiles(t, root, "inside.txt")
	writeFiles(t, outside, "outside.txt")

	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Fatal(err)
	}

	got := newWalkEngine().Discover(root, nil)
	if len(got) != 1 || filepath.Base(got[0]) != "inside.txt" {
		t.Errorf("symlinked directory should not be followed, got %v", got)
	}
}

func TestFilter_NoPatternKeepsEverything(t *testing.T) {
	paths := []string{"a.go", "b.log", "c.md"}
	got := Filter(paths, nil)
	if !reflect.DeepEqual(got, paths) {
		t.Errorf("Filter(nil) = %v, want %v", got, paths)
	}
}

func TestFilter_UnanchoredSubstringMatch(t *testing.T) {
	paths := []string{"src/main.go", "vendor/dep/x.go", "docs/vendor.md"}
	got := Filter(paths, regexp.MustCompile("vendor"))
	want := []string{"src/main.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	paths := []string{"a.go", "a_test.go", "b.go", "b_test.go"}
	ignore := regexp.MustCompile(`_test\.go$`)

	once := Filter(paths, ignore)
	twice := Filter(once, ignore)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering twice changed the result: %v vs %v", once, twice)
	}
}

func TestFilter_PreservesSourceOrder(t *testing.T) {
	paths := []string{"z.go", "a.go", "m.go"}
	got := Filter(paths, regexp.MustCompile(`\.log$`))
	if !reflect.DeepEqual(got, paths) {
		t.Errorf("Filter reordered paths: %v", got)
	}
}

func TestDiscover_KeepsPathsRelativeToRoot(t *testing.T) {
	e := &Engine{
		listGit: func(r string) ([]string, error) {
			return []string{filepath.Join(r, "x.go")}, nil
		},
		log: logging.Nop(),
	}
	got := e.Discover("sub", nil)
	if len(got) != 1 || got[0] != filepath.Join("sub", "x.go") {
		t.Errorf("got %v, want sub/x.go", got)
	}
}
