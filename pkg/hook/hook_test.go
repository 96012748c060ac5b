package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return &Manager{GitDir: t.TempDir()}
}

func TestInstallWritesExecutableScript(t *testing.T) {
	m := newTestManager(t)

	hookPath, err := m.Install("/usr/local/bin/aicommit")
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if hookPath != m.Path() {
		t.Errorf("Install() path = %q; want %q", hookPath, m.Path())
	}

	info, err := os.Stat(hookPath)
	if err != nil {
		t.Fatalf("hook file missing: %v", err)
	}
	if info.Mode()&0o111 == 0 {
		t.Error("hook file is not executable")
	}

	data, err := os.ReadFile(hookPath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	// Structural checks rather than exact byte match: the entry point path
	// varies by installation location.
	for _, want := range []string{
		"#!/bin/bash",
		Marker,
		"/usr/local/bin/aicommit",
		`"$2" == ""`,
		`"$2" == "message"`,
		`--message-file "$1"`,
		"command -v aicommit",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("hook script missing %q", want)
		}
	}

	if !IsManaged(content) {
		t.Error("IsManaged() = false for freshly installed hook")
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Install("/opt/aicommit"); err != nil {
		t.Fatalf("first Install() error = %v", err)
	}
	first, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := m.Install("/opt/aicommit"); err != nil {
		t.Fatalf("second Install() error = %v", err)
	}
	second, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("repeated install produced different hook content")
	}
}

func TestInstallOverwritesExistingHook(t *testing.T) {
	m := newTestManager(t)

	if err := os.MkdirAll(filepath.Join(m.GitDir, "hooks"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(m.Path(), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Install("/opt/aicommit"); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	data, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !IsManaged(string(data)) {
		t.Error("install did not replace the pre-existing hook")
	}
}

func TestInstallThenUninstall(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Install("/opt/aicommit"); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	status, hookPath, err := m.Uninstall()
	if err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if status != Removed {
		t.Errorf("Uninstall() status = %v; want Removed", status)
	}

	if _, err := os.Stat(hookPath); !os.IsNotExist(err) {
		t.Error("hook file still present after uninstall")
	}
}

func TestUninstallWithoutHook(t *testing.T) {
	m := newTestManager(t)

	status, hookPath, err := m.Uninstall()
	if err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if status != NotInstalled {
		t.Errorf("Uninstall() status = %v; want NotInstalled", status)
	}
	if hookPath != m.Path() {
		t.Errorf("Uninstall() path = %q; want %q", hookPath, m.Path())
	}
}

func TestUninstallSkipsForeignHook(t *testing.T) {
	m := newTestManager(t)

	foreign := "#!/bin/sh\n# a user's own hook\nexit 0\n"
	if err := os.MkdirAll(filepath.Join(m.GitDir, "hooks"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(m.Path(), []byte(foreign), 0o755); err != nil {
		t.Fatal(err)
	}

	status, hookPath, err := m.Uninstall()
	if err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if status != SkippedForeign {
		t.Errorf("Uninstall() status = %v; want SkippedForeign", status)
	}
	if hookPath != m.Path() {
		t.Errorf("Uninstall() path = %q; want %q", hookPath, m.Path())
	}

	data, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatalf("foreign hook was removed: %v", err)
	}
	if string(data) != foreign {
		t.Error("foreign hook content was modified")
	}
}
