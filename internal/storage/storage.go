package storage

import (
	"errors"
	"io"
	"time"
)

var ErrInvalidPath = errors.New("invalid path")

type FileInfo struct {
	Filename    string
	ContentType string
	Size        int64
}

// Storage stages uploaded videos so the browser can play them back before
// the analysis starts. Staged files are scratch data and expire.
type Storage interface {
	SaveFile(file io.Reader, info FileInfo) (string, error)
	OpenFile(name string) (io.ReadSeekCloser, error)
	DeleteFile(name string) error
	Sweep(cutoff time.Time) (int, error)
}
