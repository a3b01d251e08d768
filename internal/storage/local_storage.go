package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (ls *LocalStorage) SaveFile(file io.Reader, info FileInfo) (string, error) {
	ext := strings.ToLower(filepath.Ext(info.Filename))
	if ext == "" {
		ext = ".mp4"
	}

	filename := uuid.New().String() + ext
	fullPath := filepath.Join(ls.basePath, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filename, nil
}

func (ls *LocalStorage) OpenFile(name string) (io.ReadSeekCloser, error) {
	fullPath, err := ls.resolve(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

func (ls *LocalStorage) DeleteFile(name string) error {
	fullPath, err := ls.resolve(name)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// Sweep removes staged files last modified before cutoff.
func (ls *LocalStorage) Sweep(cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(ls.basePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read storage directory: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(ls.basePath, e.Name())); err != nil && !os.IsNotExist(err) {
				return removed, fmt.Errorf("failed to delete file: %w", err)
			}
			removed++
		}
	}
	return removed, nil
}

// Staged files live directly under basePath, so anything that is not a
// bare file name is rejected.
func (ls *LocalStorage) resolve(name string) (string, error) {
	cleanPath := filepath.Clean(name)
	if cleanPath == "." || strings.Contains(cleanPath, "..") || filepath.Base(cleanPath) != cleanPath {
		return "", ErrInvalidPath
	}
	return filepath.Join(ls.basePath, cleanPath), nil
}
