// Package api exposes the protection pipeline over HTTP: multipart upload
// in, protected artifact plus verification record out. Uploaded files live
// in the temp dir only for the duration of a request; protected artifacts
// stay there for download.
package api

import (
	"net/http"

	"go.uber.org/zap"
)

type Server struct {
	log          *zap.SugaredLogger
	tempDir      string
	defaultLevel string
}

func New(tempDir, defaultLevel string, log *zap.SugaredLogger) *Server {
	return &Server{
		log:          log,
		tempDir:      tempDir,
		defaultLevel: defaultLevel,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/protect", s.handleProtect)
	mux.HandleFunc("/verify", s.handleVerify)
	mux.HandleFunc("/download/", s.handleDownload)
	mux.HandleFunc("/protection-info", s.handleProtectionInfo)
	return mux
}
