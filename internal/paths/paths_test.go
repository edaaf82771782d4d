package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"content/players/ace.md", "ace"},
		{"awc-2024.yaml", "awc-2024"},
		{"2024.finals.yaml", "2024.finals"},
		{"noext", "noext"},
	}
	for _, tc := range tests {
		if got := Stem(tc.in); got != tc.want {
			t.Fatalf("Stem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeRelPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"images/a.png", "images/a.png"},
		{"./images/a.png", "images/a.png"},
		{"/images//a.png", "images/a.png"},
		{"//a.png", "a.png"},
	}
	for _, tc := range tests {
		if got := NormalizeRelPath(tc.in); got != tc.want {
			t.Fatalf("NormalizeRelPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateWithinRoot(t *testing.T) {
	root := t.TempDir()
	inside := filepath.Join(root, "players", "ace.md")
	if err := os.MkdirAll(filepath.Dir(inside), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(inside, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateWithinRoot(root, inside); err != nil {
		t.Fatalf("expected inside path to validate: %v", err)
	}

	outside := filepath.Join(root, "..", "elsewhere.md")
	if err := ValidateWithinRoot(root, outside); !errors.Is(err, ErrPathOutsideRoot) {
		t.Fatalf("expected ErrPathOutsideRoot, got %v", err)
	}
}

func TestValidateWithinRootSymlink(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	target := filepath.Join(other, "secret.md")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(root, "link.md")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	if err := ValidateWithinRoot(root, link); !errors.Is(err, ErrPathOutsideRoot) {
		t.Fatalf("expected symlink escape to be rejected, got %v", err)
	}
}

func TestJoinWithinRoot(t *testing.T) {
	root := t.TempDir()

	got, err := JoinWithinRoot(root, "/images/a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(root, "images", "a.png"); got != want {
		t.Fatalf("JoinWithinRoot = %q, want %q", got, want)
	}

	if _, err := JoinWithinRoot(root, "../../etc/passwd"); !errors.Is(err, ErrPathOutsideRoot) {
		t.Fatalf("expected traversal to be rejected, got %v", err)
	}
}
