package api

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kdimtricp/repcheck/internal/models"
	"github.com/kdimtricp/repcheck/internal/storage"
	"github.com/kdimtricp/repcheck/internal/upload"
)

const maxFormSize = 1 << 20

type previewData struct {
	VideoFile  string
	PreviewRef string
}

func (app *App) UploadPageHandler(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Exercises []models.Exercise
		Preview   previewData
	}{
		Exercises: models.Exercises,
	}

	app.renderPage(w, "upload", data)
}

// UploadHandler validates the upload form and, when every field is present,
// starts a session and sends the browser to its analysis screen.
func (app *App) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)

	sess, err := upload.FormFromRequest(r).Session()
	if err != nil {
		app.renderError(w, upload.Notice(err))
		return
	}

	app.Sessions.Put(sess)
	app.log().Info("session created",
		zap.String("session", sess.ID),
		zap.String("exercise", string(sess.Exercise)),
		zap.String("video", sess.VideoFile))

	target := "/analysis/" + sess.ID
	if !isHTMX(r) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	w.Header().Set("HX-Redirect", target)
	app.renderSuccess(w, "Video uploaded! Starting analysis...")
}

// PreviewHandler stages a dropped or chosen file so the form can play it
// back. Non-video files are rejected and leave the form untouched.
func (app *App) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxUploadSize)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			app.renderError(w, "File too large")
			return
		}
		app.renderError(w, upload.NoticeNotVideo)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("video")
	if err != nil {
		app.renderError(w, upload.NoticeNotVideo)
		return
	}
	defer file.Close()

	contentType, err := upload.CheckVideo(header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		app.log().Info("preview rejected",
			zap.String("filename", header.Filename),
			zap.String("content_type", header.Header.Get("Content-Type")))
		app.renderError(w, upload.Notice(err))
		return
	}

	ref, err := app.Storage.SaveFile(file, storage.FileInfo{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	})
	if err != nil {
		app.log().Error("staging preview", zap.Error(err))
		app.renderErrorStatus(w, http.StatusInternalServerError, "Failed to save file")
		return
	}

	app.renderPartial(w, http.StatusOK, "preview", previewData{
		VideoFile:  header.Filename,
		PreviewRef: ref,
	})
}

func (app *App) MediaHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	file, err := app.Storage.OpenFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	var modTime time.Time
	if f, ok := file.(interface{ Stat() (os.FileInfo, error) }); ok {
		if stat, err := f.Stat(); err == nil {
			modTime = stat.ModTime()
		}
	}

	if contentType, err := upload.CheckVideo("", name); err == nil {
		w.Header().Set("Content-Type", contentType)
	}

	// ServeContent handles Range requests for the video element.
	http.ServeContent(w, r, name, modTime, file)
}
