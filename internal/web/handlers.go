package web

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/render"

	"github.com/edenplace/reportsheet-go/internal/logging"
	"github.com/edenplace/reportsheet-go/internal/report"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleExtract accepts a multipart broadsheet upload and responds with
// the extracted term data as JSON. Any load or parse failure surfaces
// as one generic 422; "zero subjects / zero results" is a legitimate
// 200 response, not an error.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, r, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("broadsheet")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "no broadsheet file provided")
		return
	}
	defer file.Close()

	// The extractor reads from disk, so stage the upload in a temp dir
	// that lives only for this request.
	tmpDir, err := os.MkdirTemp("", "broadsheet-*")
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "could not stage uploaded file")
		return
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, filepath.Base(header.Filename))
	if err := saveUpload(path, file); err != nil {
		writeError(w, r, http.StatusInternalServerError, "could not stage uploaded file")
		return
	}

	data, err := broadsheet.Extract(path, broadsheet.DefaultOptions())
	if err != nil {
		logger.Error("broadsheet extraction failed", "file", header.Filename, "error", err)
		writeError(w, r, http.StatusUnprocessableEntity,
			"error processing the uploaded file; ensure it is a valid broadsheet workbook")
		return
	}

	logger.Info("broadsheet extracted", "file", header.Filename, "terms", len(data.Terms))
	render.JSON(w, r, data)
}

// handleReport renders a report sheet HTML document from a posted
// ReportData payload.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var data report.ReportData
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid report payload")
		return
	}

	if missing := data.MissingFields(); len(missing) > 0 {
		writeFieldError(w, r, "all fields are required to generate the report sheet", missing)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.Render(w, data); err != nil {
		logging.FromContext(r.Context()).Error("report rendering failed", "error", err)
	}
}

func saveUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
