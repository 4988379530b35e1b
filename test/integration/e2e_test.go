//go:build integration

package integration_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/typst-templatr/typst-templatr/internal/config"
	"github.com/typst-templatr/typst-templatr/internal/library"
	"github.com/typst-templatr/typst-templatr/internal/linker"
	"github.com/typst-templatr/typst-templatr/internal/platform"
)

// TestFullFlow walks init -> install -> list -> add -> remove against the real
// filesystem with the default, $HOME-based config store.
func TestFullFlow(t *testing.T) {
	env := setupTestEnv(t)
	src := filepath.Join(env.SourceDir, "report.typ")
	writeFile(t, src, "= Report\n")

	// Step 1: init.
	store := config.NewStore()
	if err := store.Save(&config.Config{TemplatesPath: env.LibraryDir}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	assertFileExists(t, filepath.Join(env.HomeDir, ".typst-templatr.yaml"))
	assertNotExists(t, env.LibraryDir)

	// Step 2: load and open the library.
	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dir, err := store.LibraryDir(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fs := afero.NewOsFs()
	lib := library.New(fs, dir, nil)

	// Step 3: install.
	name, err := lib.Install(src, env.ProjectDir, library.InstallOptions{})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if name != "report.typ" {
		t.Errorf("installed name = %q", name)
	}

	// Step 4: list.
	seq, err := lib.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for n, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, n)
	}
	if len(names) != 1 || names[0] != "report.typ" {
		t.Errorf("List = %v, want [report.typ]", names)
	}

	// Step 5: add without extension.
	project := linker.NewProject(fs, platform.OSLinker{}, lib, env.ProjectDir, nil)
	link, err := project.Add("report")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	target, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink: %v", err)
	}
	if target != filepath.Join(env.LibraryDir, "report.typ") {
		t.Errorf("link target = %q", target)
	}

	// Library edits show through the link.
	writeFile(t, filepath.Join(env.LibraryDir, "report.typ"), "= Report v2\n")
	assertContent(t, link, "= Report v2\n")

	// Step 6: remove with extension.
	if err := project.Remove("report.typ"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	assertNotExists(t, link)
	assertFileExists(t, filepath.Join(env.LibraryDir, "report.typ"))
}

// TestUninstallLeavesDanglingLink documents the consistency gap between the
// library and project links.
func TestUninstallLeavesDanglingLink(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.LibraryDir, "letter.typ"), "= Letter\n")

	fs := afero.NewOsFs()
	lib := library.New(fs, env.LibraryDir, nil)
	project := linker.NewProject(fs, platform.OSLinker{}, lib, env.ProjectDir, nil)

	if _, err := project.Add("letter"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := lib.Uninstall("letter"); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}

	links, err := project.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(links) != 1 || !links[0].Dangling {
		t.Fatalf("expected one dangling link, got %+v", links)
	}

	// Re-adding is blocked until the dangling link is removed.
	writeFile(t, filepath.Join(env.LibraryDir, "letter.typ"), "= Letter v2\n")
	if _, err := project.Add("letter"); !errors.Is(err, linker.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

// TestMissingConfig verifies that a fresh home has no configuration.
func TestMissingConfig(t *testing.T) {
	setupTestEnv(t)

	if _, err := config.NewStore().Load(); !errors.Is(err, config.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
