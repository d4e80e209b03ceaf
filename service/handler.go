package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/0xalexb/edat/convert"
	"github.com/0xalexb/edat/encode"
	"github.com/0xalexb/edat/listener/middleware"
	"github.com/0xalexb/edat/parse"
)

// DiagnosticJSON is the wire form of a parse.Diagnostic.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Source   string `json:"source,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// ParseResponse is the body of POST /v1/parse.
type ParseResponse struct {
	Valid       bool             `json:"valid"`
	Table       json.RawMessage  `json:"table"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// TypesResponse is the body of GET /v1/types.
type TypesResponse struct {
	Types []string `json:"types"`
}

type handler struct {
	registry *convert.Registry
	logger   *slog.Logger
}

// NewHandler returns the service routes wrapped in recovery, request
// logging and the configured timeout. A nil registry means
// convert.Default().
func NewHandler(registry *convert.Registry, cfg Config) (http.Handler, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if registry == nil {
		registry = convert.Default()
	}

	h := &handler{registry: registry, logger: slog.Default()}

	mux := http.NewServeMux()
	mux.Handle("POST /v1/parse", middleware.MaxBodySize(cfg.MaxBodySize)(http.HandlerFunc(h.parse)))
	mux.HandleFunc("GET /v1/types", h.types)
	mux.HandleFunc("GET /healthz", h.health)

	return middleware.Chain(mux,
		middleware.Recovery(),
		middleware.Logging(),
		middleware.Timeout(cfg.Timeout),
	), nil
}

func (h *handler) parse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		if middleware.IsBodyTooLarge(err) {
			middleware.WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")

			return
		}

		middleware.WriteError(w, http.StatusBadRequest, "reading request body failed")

		return
	}

	name := r.URL.Query().Get("name")

	var collected parse.Collector

	tbl, _ := parse.Parse(body,
		parse.WithRegistry(h.registry),
		parse.WithName(name),
		parse.WithSink(parse.MultiSink(&collected, parse.LogSink(h.logger))),
		parse.WithLogger(h.logger),
	)

	data, err := encode.JSON(tbl)
	if err != nil {
		h.logger.Error("encoding table failed", "source", name, "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, "encoding table failed")

		return
	}

	resp := ParseResponse{
		Valid:       !collected.HasErrors(),
		Table:       data,
		Diagnostics: make([]DiagnosticJSON, 0, len(collected.Diagnostics)),
	}

	for _, d := range collected.Diagnostics {
		resp.Diagnostics = append(resp.Diagnostics, DiagnosticJSON{
			Severity: d.Severity.String(),
			Kind:     d.Kind.String(),
			Message:  d.Message,
			Source:   d.Source,
			Line:     d.Line,
			Column:   d.Column,
		})
	}

	status := http.StatusOK
	if !resp.Valid {
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, resp)
}

func (h *handler) types(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, TypesResponse{Types: h.registry.Names()})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("writing response failed", "error", err)
	}
}
