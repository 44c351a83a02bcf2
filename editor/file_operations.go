package editor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/bulga138/cellpad/fileio"
)

// Save writes the document to the editor's file. On failure the document,
// cursor and modified state are left as they were.
func (e *Editor) Save() error {
	if e.filename == "" {
		e.setStatusMessage("Save error: %v", ErrNoFilename)
		return ErrNoFilename
	}

	content := e.buf.Serialize()
	if err := fileio.Save(e.filename, content); err != nil {
		e.setStatusMessage("Save error: %v", err)
		return fmt.Errorf("save %s: %w", e.filename, err)
	}

	e.dirty = false
	e.initialHash = e.calculateBufferHash()
	e.setStatusMessage("%d bytes written to %s", len(content), e.filename)
	return nil
}

// Modified reports whether the document differs from what was loaded or
// last saved. Editing back to the saved text counts as unmodified.
func (e *Editor) Modified() bool {
	if !e.dirty {
		return false
	}
	return e.calculateBufferHash() != e.initialHash
}

// calculateBufferHash streams the serialized buffer through SHA-256.
func (e *Editor) calculateBufferHash() string {
	hasher := sha256.New()
	if _, err := e.buf.WriteTo(hasher); err != nil {
		return "error_calculating_hash"
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
