package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/kdimtricp/repcheck/internal/models"
)

var (
	ErrMissingFields = errors.New("upload: missing required fields")
	ErrNotVideo      = errors.New("upload: not a video file")
)

// Notices shown to the user for the two rejections.
const (
	NoticeMissingFields = "Please fill in all fields"
	NoticeNotVideo      = "Please upload a video file"
)

// Notice returns the user-facing text for a validation error.
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NoticeMissingFields
	case errors.Is(err, ErrNotVideo):
		return NoticeNotVideo
	default:
		return "Something went wrong, please try again"
	}
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
	".mkv":  true,
	".m4v":  true,
}

// Form is the submitted upload form. VideoFile is the original filename of
// the chosen video; PreviewRef names its staged preview, if any.
type Form struct {
	Name       string
	Exercise   string
	VideoFile  string
	PreviewRef string
}

func FormFromRequest(r *http.Request) Form {
	return Form{
		Name:       strings.TrimSpace(r.FormValue("name")),
		Exercise:   r.FormValue("exercise"),
		VideoFile:  strings.TrimSpace(r.FormValue("videoFile")),
		PreviewRef: r.FormValue("previewRef"),
	}
}

// Validate checks the three required fields and returns the parsed
// exercise. Any missing field yields ErrMissingFields.
func (f Form) Validate() (models.Exercise, error) {
	exercise, ok := models.ParseExercise(f.Exercise)
	if strings.TrimSpace(f.Name) == "" || !ok || strings.TrimSpace(f.VideoFile) == "" {
		return "", ErrMissingFields
	}
	return exercise, nil
}

// Session builds the session context for a valid form.
func (f Form) Session() (*models.Session, error) {
	exercise, err := f.Validate()
	if err != nil {
		return nil, err
	}
	return models.NewSession(strings.TrimSpace(f.Name), exercise, strings.TrimSpace(f.VideoFile), f.PreviewRef), nil
}

// CheckVideo accepts video/* content types. When the browser sent no type
// or a generic one, the file extension decides.
func CheckVideo(contentType, filename string) (string, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if strings.HasPrefix(contentType, "video/") {
		return contentType, nil
	}
	if contentType != "" && contentType != "application/octet-stream" {
		return "", ErrNotVideo
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !videoExtensions[ext] {
		return "", ErrNotVideo
	}
	if ext == ".mov" {
		return "video/quicktime", nil
	}
	return "video/" + strings.TrimPrefix(ext, "."), nil
}
