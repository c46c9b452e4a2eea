package pipeline

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrChecksum is returned when the staged file does not read back as written.
var ErrChecksum = errors.New("checksum mismatch")

// writeAtomic stages data in a temp file inside dir, verifies it, and renames
// it to dir/name. On any failure nothing is left at the target path.
func writeAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	target := filepath.Join(dir, name)

	f, err := os.CreateTemp(dir, ".papersmith-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	written, err := os.ReadFile(tmp)
	if err != nil {
		return "", fmt.Errorf("read back temp file: %w", err)
	}
	want, got := sha256.Sum256(data), sha256.Sum256(written)
	if !bytes.Equal(want[:], got[:]) {
		return "", fmt.Errorf("%w: staged file differs from export", ErrChecksum)
	}

	if err := os.Chmod(tmp, 0o644); err != nil {
		return "", fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	committed = true
	return target, nil
}
