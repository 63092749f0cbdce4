package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"attnview/internal/logging"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Title   string
	Initial frameView
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	view := newFrameView(session.ID(), session.Frame(), s.root)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{Title: view.Title, Initial: view}); err != nil {
		s.logger.Error("render page", logging.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
