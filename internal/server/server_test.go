package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/capview/pkg/config"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/pipeline"
	"github.com/matzehuels/capview/pkg/render/train"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	s := New(pipeline.NewRunner(nil, nil, logger), config.Default(), logger)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil || got["status"] != "ok" {
		t.Errorf("body = %s", body)
	}
	if resp.Header.Get(requestIDHeader) == "" {
		t.Error("missing X-Request-ID")
	}
	if !strings.HasPrefix(resp.Header.Get("Server"), "capview/") {
		t.Errorf("Server header = %q", resp.Header.Get("Server"))
	}
}

func TestRequestIDPropagates(t *testing.T) {
	ts := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(requestIDHeader); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestTrain(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		format      string
		contentType string
		magic       []byte
	}{
		{"svg", "image/svg+xml", []byte("<svg")},
		{"png", "image/png", []byte("\x89PNG")},
		{"json", "application/json", []byte("{")},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/api/train."+tt.format+"?loads=1.3,0.2,0.42,0.9")
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body %s", resp.StatusCode, body)
			}
			if ct := resp.Header.Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !bytes.Contains(body[:min(len(body), 200)], tt.magic) {
				t.Errorf("body does not start like %s", tt.format)
			}
		})
	}
}

func TestTrainErrors(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name   string
		path   string
		status int
		code   errors.Code
	}{
		{"unknown format", "/api/train.gif?loads=0.5", 400, errors.ErrCodeInvalidFormat},
		{"missing loads", "/api/train.svg", 400, errors.ErrCodeInvalidInput},
		{"bad load", "/api/train.svg?loads=0.5,x", 400, errors.ErrCodeInvalidInput},
		{"bad width", "/api/train.svg?loads=0.5&width=wide", 400, errors.ErrCodeInvalidInput},
		{"negative height", "/api/train.svg?loads=0.5&height=-3", 400, errors.ErrCodeInvalidInput},
		{"zero width", "/api/train.svg?loads=0.5&width=0", 400, errors.ErrCodeInvalidInput},
		{"zero height", "/api/train.png?loads=0.5&height=0", 400, errors.ErrCodeInvalidInput},
		{"layout zero width", "/api/layout?loads=0.5&width=0", 400, errors.ErrCodeInvalidInput},
		{"zero scale falls back to default", "/api/train.png?loads=0.5&scale=0", 200, ""},
		{"negative scale", "/api/train.png?loads=0.5&scale=-1", 400, errors.ErrCodeInvalidInput},
		{"layout without loads", "/api/layout", 400, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, tt.status, body)
			}
			if tt.code == "" {
				return
			}
			var er ErrorResponse
			if err := json.Unmarshal(body, &er); err != nil {
				t.Fatalf("error body is not JSON: %s", body)
			}
			if er.Code != tt.code || er.Error == "" {
				t.Errorf("error = %+v, want code %s", er, tt.code)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/api/layout?loads=0.05,0.5,0.95&width=600&height=200")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}

	var d train.Description
	if err := json.Unmarshal(body, &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Layout.Count != 3 || len(d.Carriages) != 3 {
		t.Fatalf("layout = %+v", d.Layout)
	}
	if d.Carriages[0].Type != train.LeftEnd || d.Carriages[1].Type != train.Middle || d.Carriages[2].Type != train.RightEnd {
		t.Errorf("types = %v %v %v", d.Carriages[0].Type, d.Carriages[1].Type, d.Carriages[2].Type)
	}
	if d.Layout.Size.W > 600 || d.Layout.Size.H > 200 {
		t.Errorf("size %v exceeds requested bounds", d.Layout.Size)
	}
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)
	get(t, ts.URL+"/health")
	get(t, ts.URL+"/api/train.svg")

	resp, body := get(t, ts.URL+"/api/stats")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got struct {
		Requests     int64   `json:"requests"`
		ClientErrors int64   `json:"client_errors"`
		ServerErrors int64   `json:"server_errors"`
		HitRatio     float64 `json:"cache_hit_ratio"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	// The stats request itself is counted after the snapshot is taken.
	if got.Requests != 2 || got.ClientErrors != 1 || got.ServerErrors != 0 {
		t.Errorf("stats = %+v, want 2 requests with 1 client error", got)
	}
}
