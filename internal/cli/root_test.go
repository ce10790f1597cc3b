package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name           string
		verbose, quiet bool
		wantDebug      bool
		wantInfo       bool
	}{
		{name: "default", wantInfo: true},
		{name: "verbose", verbose: true, wantDebug: true, wantInfo: true},
		{name: "quiet", quiet: true},
		{name: "quiet wins", verbose: true, quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newLogger(&bytes.Buffer{}, tt.verbose, tt.quiet)
			if logger.IsDebug() != tt.wantDebug {
				t.Errorf("IsDebug() = %v, want %v", logger.IsDebug(), tt.wantDebug)
			}
			if logger.IsInfo() != tt.wantInfo {
				t.Errorf("IsInfo() = %v, want %v", logger.IsInfo(), tt.wantInfo)
			}
			if !logger.IsError() {
				t.Error("IsError() = false")
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("isTerminal(buffer) = true")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("writes", func(t *testing.T) {
		path := filepath.Join(dir, "ok.txt")
		err := writeFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "#003366\n")
			return err
		})
		if err != nil {
			t.Fatalf("writeFile() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "#003366\n" {
			t.Errorf("file = %q", data)
		}
	})

	t.Run("removes partial output", func(t *testing.T) {
		path := filepath.Join(dir, "partial.png")
		errRender := errors.New("render failed")
		err := writeFile(path, func(w io.Writer) error {
			_, _ = io.WriteString(w, "\x89PNG")
			return errRender
		})
		if !errors.Is(err, errRender) {
			t.Fatalf("writeFile() error = %v, want %v", err, errRender)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("Stat() error = %v, want the partial file removed", err)
		}
	})

	t.Run("create fails", func(t *testing.T) {
		path := filepath.Join(dir, "missing", "out.txt")
		if err := writeFile(path, func(io.Writer) error { return nil }); err == nil {
			t.Error("writeFile() error = nil")
		}
	})
}
