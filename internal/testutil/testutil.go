// Package testutil holds helpers shared by package tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/osutil"
	"github.com/ayoisaiah/pomodoro/store"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	output, goldenFileName := tc.Output()

	if output != nil {
		g.Assert(t, goldenFileName, output)
		return
	}

	f := filepath.Join("testdata", goldenFileName+".golden")
	if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

// NewDB opens a bolt database in a temporary directory. The database is
// closed when the test finishes.
func NewDB(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "pomodoro.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewConfig returns a configuration whose files live in a temporary
// directory. The audio cue is disabled.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()

	cfg, err := config.New(
		config.WithPaths(
			filepath.Join(dir, "config.yml"),
			filepath.Join(dir, "pomodoro.db"),
			filepath.Join(dir, "pomodoro.log"),
		),
	)
	if err != nil {
		t.Fatalf("building test config: %v", err)
	}

	cfg.Sound.Enabled = false

	return cfg
}
