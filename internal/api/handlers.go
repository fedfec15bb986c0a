package api

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	adversarial "github.com/jacksliwoski/anti-ai-ai-club"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/wavio"
)

const maxUploadBytes = 256 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "adversarial-watermark",
	})
}

// handleProtect accepts a multipart form (audio_file, artist_name,
// track_title, protection_level) and responds with the protected artifact
// name and its verification record. Unknown levels fall back to the
// configured default.
func (s *Server) handleProtect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("audio_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No audio file provided")
		return
	}
	defer file.Close()

	artist := formValue(r, "artist_name", "Unknown Artist")
	title := formValue(r, "track_title", "Unknown Track")
	level := formValue(r, "protection_level", s.defaultLevel)

	inputPath := filepath.Join(s.tempDir, "input_"+uuid.NewString()+".wav")
	if err := saveUpload(inputPath, file); err != nil {
		s.log.Errorw("save upload", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// Input is transient; only the protected artifact outlives the request.
	defer os.Remove(inputPath)

	channels, sampleRate, err := wavio.Load(inputPath)
	if err != nil {
		s.log.Errorw("load upload", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	protected, record, err := adversarial.Protect(r.Context(), channels, sampleRate, artist, title,
		adversarial.WithLevel(level))
	if err != nil {
		s.log.Errorw("protect", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	outputName := "protected_" + uuid.NewString() + ".wav"
	outputPath := filepath.Join(s.tempDir, outputName)
	if err := wavio.Save(outputPath, protected, sampleRate); err != nil {
		s.log.Errorw("save protected", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Infow("protected",
		"signature", record.WatermarkSignature,
		"level", record.ProtectionLevel,
		"stereo", record.IsStereo,
		"output", outputName,
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":                 true,
		"output_file":             outputName,
		"verification":            record,
		"ai_degradation_estimate": adversarial.EstimateDegradation(record.ProtectionLevel),
		"protection_applied": map[string]bool{
			"spread_spectrum_watermark":  true,
			"mfcc_disruption":            true,
			"temporal_jitter":            true,
			"high_frequency_adversarial": true,
		},
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("audio_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No audio file provided")
		return
	}
	defer file.Close()

	tempPath := filepath.Join(s.tempDir, "verify_"+uuid.NewString()+".wav")
	if err := saveUpload(tempPath, file); err != nil {
		s.log.Errorw("save upload", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer os.Remove(tempPath)

	channels, sampleRate, err := wavio.Load(tempPath)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := adversarial.Verify(r.Context(), wavio.Downmix(channels), sampleRate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	name := filepath.Base(r.URL.Path)
	if name == "." || name == "/" || name == "download" {
		writeError(w, http.StatusBadRequest, "no file specified")
		return
	}
	path := filepath.Join(s.tempDir, name)
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	http.ServeFile(w, r, path)
}

func (s *Server) handleProtectionInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	levels := make(map[string]adversarial.LevelInfo)
	for _, info := range adversarial.DescribeLevels() {
		levels[info.Name] = info
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"levels": levels,
		"features": map[string]string{
			"spread_spectrum_watermark":  "Embeds detectable signature for verification",
			"mfcc_disruption":            "Targets voice/timbre learning (defeats voice cloning)",
			"temporal_jitter":            "Disrupts rhythm/beat pattern learning",
			"high_frequency_adversarial": "Imperceptible patterns that poison AI training",
		},
	})
}

func formValue(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func saveUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
