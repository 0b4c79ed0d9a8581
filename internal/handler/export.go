package handler

import (
	"io"
	"net/http"
	"strconv"
)

// exportFilename is the download name of the conversion export attachment.
const exportFilename = "filename.csv"

// GetConversionCSV handles POST /v1/csv-export?month=&year=.
// The export is returned as a file attachment.
func (s *Server) GetConversionCSV(w http.ResponseWriter, r *http.Request) {
	content, ok := s.conversionCSV(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // the client has gone away if this fails
	io.WriteString(w, content)
}

// GetConversionCSVContents handles POST /v1/csv-export/contents?month=&year=.
// The export is returned inline as plain text.
func (s *Server) GetConversionCSVContents(w http.ResponseWriter, r *http.Request) {
	content, ok := s.conversionCSV(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // the client has gone away if this fails
	io.WriteString(w, content)
}

// conversionCSV binds month and year and runs the export. On failure the
// error response has already been written and ok is false.
func (s *Server) conversionCSV(w http.ResponseWriter, r *http.Request) (content string, ok bool) {
	var month, year int
	if err := queryParam(r, "month", true, &month); err != nil {
		badRequest(w, err)
		return "", false
	}
	if err := queryParam(r, "year", true, &year); err != nil {
		badRequest(w, err)
		return "", false
	}

	content, err := s.export.ConversionCSV(r.Context(), month, year)
	if err != nil {
		writeServiceError(w, r, err, "export not found")
		return "", false
	}
	return content, true
}
