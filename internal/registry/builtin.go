package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vovakirdan/mousetris/internal/config"
	"github.com/vovakirdan/mousetris/internal/engine"
	"github.com/vovakirdan/mousetris/internal/render"
)

func init() {
	Register("discard", "drop every frame", func(context.Context, Deps) (Output, error) {
		return Output{Sink: engine.Discard}, nil
	})
	Register("file", "append raw 576-byte frames to display.file_path", openFile)
}

func openFile(_ context.Context, deps Deps) (Output, error) {
	path, err := config.ExpandHome(deps.Config.Display.FilePath)
	if err != nil {
		return Output{}, err
	}
	if path == "" {
		return Output{}, fmt.Errorf("display.file_path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Output{}, fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Output{}, err
	}
	deps.Logger.Debug("writing frames", "path", path)

	fs := &fileSink{f: f}
	return Output{
		Sink:  fs,
		Close: func(context.Context) error { return fs.close() },
	}, nil
}

// fileSink appends frames to a file. Safe for concurrent use.
type fileSink struct {
	mu sync.Mutex
	f  *os.File
}

func (s *fileSink) Display(_ context.Context, fr render.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.f.Write(fr[:])
	return err
}

func (s *fileSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
