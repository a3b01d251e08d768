package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the context threaded from the upload form through analysis
// to the results screen. It only lives in the in-memory session registry.
type Session struct {
	ID         string
	Name       string
	Exercise   Exercise
	VideoFile  string
	PreviewRef string
	CreatedAt  time.Time
}

func NewSession(name string, exercise Exercise, videoFile, previewRef string) *Session {
	return &Session{
		ID:         uuid.New().String(),
		Name:       name,
		Exercise:   exercise,
		VideoFile:  videoFile,
		PreviewRef: previewRef,
		CreatedAt:  time.Now(),
	}
}
