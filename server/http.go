package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/c360studio/ontolex/lexicon"
	"github.com/c360studio/ontolex/lexicon/frame"
	"github.com/c360studio/ontolex/loader"
	"github.com/c360studio/ontolex/taxonomy"
)

// maxRequestBodySize limits POST body sizes to prevent DoS.
const maxRequestBodySize = 1 << 20 // 1 MB

// Server serves taxonomy and lexicon queries over HTTP.
type Server struct {
	logger   *slog.Logger
	metrics  *Metrics
	snapshot atomic.Pointer[loader.Snapshot]
	origins  []string
}

// New creates a server over an initial snapshot.
func New(snap *loader.Snapshot, origins []string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:  logger,
		metrics: NewMetrics(),
		origins: origins,
	}
	s.swap(snap)
	return s
}

// Snapshot returns the active snapshot.
func (s *Server) Snapshot() *loader.Snapshot {
	return s.snapshot.Load()
}

// swap installs a new snapshot and refreshes the snapshot gauges.
func (s *Server) swap(snap *loader.Snapshot) {
	s.snapshot.Store(snap)
	s.metrics.SnapshotClasses.Set(float64(len(snap.Taxonomy.Classes())))
	s.metrics.SnapshotIndividuals.Set(float64(len(snap.Taxonomy.Individuals())))
	s.metrics.SnapshotEntries.Set(float64(len(snap.Lexicon.Entries())))
}

// Handler returns the full HTTP handler: API routes, /metrics, and
// CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterHTTPHandlers("api", mux)
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(mux)
}

// RegisterHTTPHandlers registers the API handlers under the given
// prefix. Handlers are registered as:
//
//	GET  <prefix>/status
//	GET  <prefix>/taxonomy/subclass
//	GET  <prefix>/taxonomy/classes
//	GET  <prefix>/lexicon/entry
//	POST <prefix>/lexicon/resolve
func (s *Server) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	if prefix == "" || prefix[0] != '/' {
		prefix = "/" + prefix
	}
	if prefix[len(prefix)-1] != '/' {
		prefix = prefix + "/"
	}

	mux.HandleFunc(prefix+"status", s.instrument("status", s.handleStatus))
	mux.HandleFunc(prefix+"taxonomy/subclass", s.instrument("subclass", s.handleSubclass))
	mux.HandleFunc(prefix+"taxonomy/classes", s.instrument("classes", s.handleClasses))
	mux.HandleFunc(prefix+"lexicon/entry", s.instrument("entry", s.handleEntry))
	mux.HandleFunc(prefix+"lexicon/resolve", s.instrument("resolve", s.handleResolve))
}

// instrument wraps a handler with query counting and duration metrics.
func (s *Server) instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		s.metrics.QueriesTotal.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
		s.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// ----------------------------------------------------------------------------
// GET /api/status
// ----------------------------------------------------------------------------

type statusResponse struct {
	SnapshotID  string   `json:"snapshot_id"`
	LoadedAt    string   `json:"loaded_at"`
	Sources     []string `json:"sources,omitempty"`
	Classes     int      `json:"classes"`
	Individuals int      `json:"individuals"`
	Entries     int      `json:"entries"`
	Markers     int      `json:"markers"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	snap := s.Snapshot()
	writeJSON(w, http.StatusOK, statusResponse{
		SnapshotID:  snap.ID,
		LoadedAt:    snap.LoadedAt.Format(time.RFC3339),
		Sources:     snap.Sources,
		Classes:     len(snap.Taxonomy.Classes()),
		Individuals: len(snap.Taxonomy.Individuals()),
		Entries:     len(snap.Lexicon.Entries()),
		Markers:     len(snap.Lexicon.Markers()),
	})
}

// ----------------------------------------------------------------------------
// GET /api/taxonomy/subclass?class=a&ancestor=b
// ----------------------------------------------------------------------------

type subclassResponse struct {
	Class      string `json:"class"`
	Ancestor   string `json:"ancestor"`
	IsSubclass bool   `json:"is_subclass"`
}

func (s *Server) handleSubclass(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	class := r.URL.Query().Get("class")
	ancestor := r.URL.Query().Get("ancestor")
	if class == "" || ancestor == "" {
		writeError(w, http.StatusBadRequest, "class and ancestor parameters are required")
		return
	}

	ok, err := s.Snapshot().Taxonomy.IsSubclassOf(class, ancestor)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subclassResponse{Class: class, Ancestor: ancestor, IsSubclass: ok})
}

// ----------------------------------------------------------------------------
// GET /api/taxonomy/classes?individual=obj11
// ----------------------------------------------------------------------------

type classesResponse struct {
	Individual string   `json:"individual"`
	Classes    []string `json:"classes"`
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	individual := r.URL.Query().Get("individual")
	if individual == "" {
		writeError(w, http.StatusBadRequest, "individual parameter is required")
		return
	}

	chain, err := s.Snapshot().Taxonomy.ClassesOf(individual)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, classesResponse{Individual: individual, Classes: chain})
}

// ----------------------------------------------------------------------------
// GET /api/lexicon/entry?id=drum_n
// ----------------------------------------------------------------------------

type formJSON struct {
	Written  string            `json:"written"`
	Language string            `json:"language"`
	Features map[string]string `json:"features,omitempty"`
}

type nodeJSON struct {
	Kind  string     `json:"kind"`
	Value string     `json:"value,omitempty"`
	Edges []edgeJSON `json:"edges,omitempty"`
}

type edgeJSON struct {
	Role string   `json:"role"`
	Node nodeJSON `json:"node"`
}

type entryResponse struct {
	ID        string     `json:"id"`
	Canonical formJSON   `json:"canonical"`
	POS       string     `json:"pos"`
	Forms     []formJSON `json:"forms,omitempty"`
	Frame     *nodeJSON  `json:"frame,omitempty"`
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id parameter is required")
		return
	}

	entry, err := s.Snapshot().Lexicon.Entry(id)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entryToJSON(entry))
}

func entryToJSON(e lexicon.Entry) entryResponse {
	resp := entryResponse{
		ID:        e.ID,
		Canonical: formToJSON(e.CanonicalForm),
		POS:       string(e.POS),
	}
	for _, f := range e.Forms {
		resp.Forms = append(resp.Forms, formToJSON(f))
	}
	if e.PhraseRoot != nil {
		n := nodeToJSON(e.PhraseRoot)
		resp.Frame = &n
	}
	return resp
}

func formToJSON(f lexicon.Form) formJSON {
	return formJSON{Written: f.Written, Language: f.Language, Features: f.Features}
}

func nodeToJSON(n *frame.Node) nodeJSON {
	out := nodeJSON{Kind: string(n.Kind), Value: n.Value}
	for _, e := range n.Edges {
		out.Edges = append(out.Edges, edgeJSON{Role: e.Role.String(), Node: nodeToJSON(e.Child)})
	}
	return out
}

// ----------------------------------------------------------------------------
// POST /api/lexicon/resolve
// ----------------------------------------------------------------------------

type resolveRequest struct {
	Entry         string            `json:"entry"`
	Substitutions map[string]string `json:"substitutions"`
}

type resolveResponse struct {
	Entry       string   `json:"entry"`
	Frame       nodeJSON `json:"frame"`
	Realization string   `json:"realization"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req resolveRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Entry == "" {
		writeError(w, http.StatusBadRequest, "entry is required")
		return
	}

	resolved, err := s.Snapshot().Lexicon.ResolveFrame(req.Entry, req.Substitutions)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolveResponse{
		Entry:       req.Entry,
		Frame:       nodeToJSON(resolved),
		Realization: resolved.String(),
	})
}

// ----------------------------------------------------------------------------
// helpers
// ----------------------------------------------------------------------------

type errorResponse struct {
	Error string `json:"error"`
}

// writeQueryError maps store errors to HTTP statuses: unknown IDs are
// 404, unbound placeholders are 422, anything else is a server fault.
func (s *Server) writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, taxonomy.ErrNotFound), errors.Is(err, lexicon.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, lexicon.ErrUnboundArgument):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.Error("query failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
