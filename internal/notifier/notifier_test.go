package notifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (f fakeProcess) Pid() int           { return f.pid }
func (f fakeProcess) PPid() int          { return 0 }
func (f fakeProcess) Executable() string { return f.executable }

func withFakeProcess(t *testing.T, proc ps.Process, err error) {
	t.Helper()
	orig := findProcessFunc
	findProcessFunc = func(int) (ps.Process, error) { return proc, err }
	t.Cleanup(func() { findProcessFunc = orig })
}

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facemirror-notifier.lock")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write lockfile: %v", err)
	}
	return path
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	t.Run("valid lockfile with running tray", func(t *testing.T) {
		withFakeProcess(t, fakeProcess{pid: 4242, executable: "facemirror-tray"}, nil)
		path := writeLockfile(t, "8315|4242|s3cret\n")

		port, secret, err := findAndValidateTrayProcess(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8315" || secret != "s3cret" {
			t.Errorf("unexpected port/secret: %q %q", port, secret)
		}
	})

	t.Run("missing lockfile", func(t *testing.T) {
		if _, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "nope.lock")); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("malformed lockfile contents", func(t *testing.T) {
		withFakeProcess(t, fakeProcess{pid: 1, executable: "facemirror-tray"}, nil)
		for _, content := range []string{
			"8315|4242",
			"|4242|s3cret",
			"notaport|4242|s3cret",
			"99999|4242|s3cret",
			"8315|notapid|s3cret",
			"8315|4242|",
		} {
			if _, _, err := findAndValidateTrayProcess(writeLockfile(t, content)); err == nil {
				t.Errorf("expected %q to be rejected", content)
			}
		}
	})

	t.Run("stale lockfile with dead process", func(t *testing.T) {
		withFakeProcess(t, nil, nil)
		path := writeLockfile(t, "8315|4242|s3cret")

		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Fatal("expected error for dead process")
		}
	})

	t.Run("pid belongs to another executable", func(t *testing.T) {
		withFakeProcess(t, fakeProcess{pid: 4242, executable: "some-editor"}, nil)
		path := writeLockfile(t, "8315|4242|s3cret")

		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Fatal("expected error for foreign process")
		}
	})
}
