package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pyrolayout/boardplan/pkg/buildinfo"
	"github.com/pyrolayout/boardplan/pkg/errors"
	pkgio "github.com/pyrolayout/boardplan/pkg/io"
	"github.com/pyrolayout/boardplan/pkg/observability"
	"github.com/pyrolayout/boardplan/pkg/pipeline"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

const (
	defaultAddr     = ":8080"
	maxUploadBytes  = 32 << 20
	shutdownTimeout = 5 * time.Second
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
)

var contentTypes = map[string]string{
	pipeline.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	pipeline.FormatJSON: "application/json",
}

// serveCommand creates the serve command, which exposes planning over HTTP.
func (c *CLI) serveCommand(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner as an HTTP API",
		Long: `Serve the planner as an HTTP API.

  POST /v1/plan?flipped=<bool>&format=<xlsx|json>   body: xlsx workbook or CSV (Content-Type: text/csv)
  GET  /healthz
  GET  /version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(logger, *configPath)
			if err != nil {
				return err
			}
			labels, err := cfg.labels()
			if err != nil {
				return err
			}
			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			srv := &server{runner: runner, logger: logger, model: cfg.Model, labels: labels}
			return listen(ctx, addr, srv.routes(), logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}

// listen serves h until ctx is cancelled, then shuts down gracefully.
func listen(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return hs.Shutdown(shutdownCtx)
}

// server handles API requests. Each request is an independent run; the
// server holds no mutable state.
type server struct {
	runner *pipeline.Runner
	logger *log.Logger
	model  string
	labels plan.Labels
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Post("/v1/plan", s.handlePlan)
	return r
}

// requestID propagates the client's X-Request-ID or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		r.Header.Set(requestIDHeader, id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, duration)
		s.logger.Info("request",
			"id", r.Header.Get(requestIDHeader),
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", duration)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

func (s *server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *server) handlePlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatXLSX
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}

	flipped := false
	if v := q.Get("flipped"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "flipped must be a boolean, got %q", v))
			return
		}
		flipped = b
	}

	inFormat, name, err := uploadFormat(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	positions, err := pkgio.Read(bytes.NewReader(body), name, inFormat)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), positions, pipeline.Options{
		Phased:  flipped,
		Formats: []string{format},
		Model:   s.model,
		Labels:  s.labels,
		Logger:  s.logger,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment",
		map[string]string{"filename": pipeline.OutputName(format, flipped)}))
	w.WriteHeader(http.StatusOK)
	w.Write(res.Artifacts[format])
}

// uploadFormat picks the input format from the Content-Type header and the
// source name used in error messages from the optional name parameter.
func uploadFormat(r *http.Request) (pkgio.Format, string, error) {
	format := pkgio.FormatXLSX
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil && mt == "text/csv" {
			format = pkgio.FormatCSV
		}
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		return format, "upload." + string(format), nil
	}
	if err := errors.ValidateUploadName(name); err != nil {
		return "", "", err
	}
	return format, name, nil
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeMissingColumn, errors.ErrCodeBoundaryViolation,
		errors.ErrCodeUnsupportedRackCount, errors.ErrCodeInvalidInput:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidModel:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	body := errorBody{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
	if status == http.StatusInternalServerError {
		s.logger.Error("plan failed", "err", err)
		if body.Code == "" {
			body = errorBody{Code: errors.ErrCodeInternal, Message: "internal error"}
		}
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
