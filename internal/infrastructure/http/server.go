package httpserver

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"sync"
	"time"

	"cryptostatus/internal/application"
	"cryptostatus/internal/domain"
)

var _ application.CycleRecorder = (*Server)(nil)

// Server exposes the last cycle report and the current document. It only reads shared state.
type Server struct {
	docPath    string
	staleAfter time.Duration
	now        func() time.Time

	mu        sync.RWMutex
	last      *domain.CycleReport
	lastWrite time.Time
}

func NewServer(docPath string, staleAfter time.Duration) *Server {
	return &Server{docPath: docPath, staleAfter: staleAfter, now: time.Now}
}

func (s *Server) Record(r domain.CycleReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &r
	if r.Written {
		s.lastWrite = r.FinishedAt
	}
}

func (s *Server) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastWrite.IsZero() {
		return errors.New("no document written yet")
	}
	if s.staleAfter > 0 && s.now().Sub(s.lastWrite) > s.staleAfter {
		return errors.New("document is stale")
	}
	return nil
}

func (s *Server) Status(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()
	if last == nil {
		writeError(w, http.StatusNotFound, "no cycle has run yet")
		return
	}
	writeJSON(w, http.StatusOK, last)
}

func (s *Server) Document(w http.ResponseWriter, _ *http.Request) {
	data, err := os.ReadFile(s.docPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to read document")
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Code: status, Message: msg})
}
