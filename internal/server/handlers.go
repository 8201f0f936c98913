package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/capview/pkg/buildinfo"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/observability"
	"github.com/matzehuels/capview/pkg/pipeline"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

// train handles GET /api/train.{format}.
func (s *Server) train(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := errors.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.options(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheState := "MISS"
	if res.CacheInfo.RenderHit {
		cacheState = "HIT"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-Cache", cacheState)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// layout handles GET /api/layout.
func (s *Server) layout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := s.runner.Build(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t.Describe())
}

// statsResponse is the body of GET /api/stats.
type statsResponse struct {
	observability.Snapshot
	CacheHitRatio float64 `json:"cache_hit_ratio"`
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.stats.Snapshot()
	writeJSON(w, http.StatusOK, statsResponse{Snapshot: snap, CacheHitRatio: snap.HitRatio()})
}

// options reads loads, width, height and scale from the query string over
// the configured defaults.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	loads, err := errors.ParseLoads(q.Get("loads"))
	if err != nil {
		return pipeline.Options{}, err
	}
	opts, err := s.cfg.PipelineOptions(loads)
	if err != nil {
		return pipeline.Options{}, err
	}
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"scale", &opts.Scale},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s %q", p.name, raw)
		}
		*p.dst = v
	}
	// Zero width or height means "default" inside the pipeline, so an
	// explicit value is checked here.
	if q.Has("width") || q.Has("height") {
		if err := errors.ValidateBounds(opts.Width, opts.Height); err != nil {
			return pipeline.Options{}, err
		}
	}
	opts.Refresh = q.Get("refresh") == "true"
	opts.Logger = s.logger.With("id", RequestID(r.Context()))
	return opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.StatusOf(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "id", RequestID(r.Context()))
	}
	writeJSON(w, status, ErrorResponse{Error: errors.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
