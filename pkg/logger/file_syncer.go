package logger

import (
	"os"
	"sync"
)

// FileSyncer is a zapcore.WriteSyncer whose underlying file can be reopened,
// so logrotate can rename the file and signal the process with SIGHUP.
type FileSyncer struct {
	path string

	mu   sync.Mutex
	file *os.File
}

func NewFileSyncer(path string) (*FileSyncer, error) {
	fs := &FileSyncer{path: path}
	if err := fs.Reopen(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileSyncer) Reopen() error {
	file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	fs.mu.Lock()
	old := fs.file
	fs.file = file
	fs.mu.Unlock()
	if old != nil {
		return old.Close()
	}
	return nil
}

func (fs *FileSyncer) Write(p []byte) (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.file.Write(p)
}

func (fs *FileSyncer) Sync() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.file.Sync()
}

func (fs *FileSyncer) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.file.Close()
}
