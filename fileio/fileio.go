package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"unicode/utf8"
)

// Files at or above this size are read in chunks instead of in one call.
const streamingThreshold = 1024 * 1024

// ErrInvalidUTF8 is returned for files that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("not valid UTF-8")

// Load returns the contents of path. ok is false when the file is missing
// unreadable, or not UTF-8 text; callers treat that as an empty document.
func Load(path string) (content string, ok bool) {
	if path == "" {
		return "", false
	}
	content, err := ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("fileio: cannot read %s, starting empty: %v", path, err)
		}
		return "", false
	}
	return content, true
}

// ReadFile reads the whole file, streaming large files in 64 KiB chunks.
func ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	if info.Size() < streamingThreshold {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return checkUTF8(path, string(b))
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var result strings.Builder
	result.Grow(int(info.Size()))

	buf := make([]byte, 64*1024)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			result.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
	}
	return checkUTF8(path, result.String())
}

func checkUTF8(path, content string) (string, error) {
	if !utf8.ValidString(content) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return content, nil
}

// Save writes content to path atomically. An existing file keeps its
// mode. A file that does not hold UTF-8 text is never overwritten, since
// it could only have been opened as an empty or lossy document.
func Save(path, content string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
		if _, err := ReadFile(path); errors.Is(err, ErrInvalidUTF8) {
			return fmt.Errorf("refusing to overwrite %s: %w", path, err)
		}
	}
	if err := writeFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
