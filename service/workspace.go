package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a scratch directory owned by a single request
type Workspace struct {
	ID  string
	Dir string
}

// AcquireWorkspace creates root/<uuid>
func AcquireWorkspace(root string) (*Workspace, error) {
	id := uuid.NewString()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{ID: id, Dir: dir}, nil
}

// Path returns the path of name inside the workspace
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, filepath.Base(name))
}

// WriteFile stores data under name inside the workspace
func (w *Workspace) WriteFile(name string, data []byte) (string, error) {
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// Release removes the workspace and everything in it
func (w *Workspace) Release() error {
	if err := os.RemoveAll(w.Dir); err != nil {
		return fmt.Errorf("failed to remove workspace %s: %w", w.ID, err)
	}
	return nil
}

// WithWorkspace runs fn in a fresh workspace and removes it afterwards,
// including when fn fails or panics.
func WithWorkspace(root string, fn func(ws *Workspace) error) error {
	ws, err := AcquireWorkspace(root)
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Release(); err != nil {
			log.Printf("⚠️  %v", err)
		}
	}()

	return fn(ws)
}

// ReadFile returns the content of name inside the workspace
func (w *Workspace) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(w.Path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
