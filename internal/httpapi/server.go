package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adsd/internal/sim"
	"adsd/pkg/types"
)

// Service defines the methods required by the HTTP API layer. The tick loop
// implements it; handlers never touch lifecycle state directly.
type Service interface {
	Status() types.StatusResponse
	Ready() bool
	Do(ctx context.Context, req types.OpRequest) (types.OpResponse, error)
	Inject(ev types.Event)
}

// joinContexts returns a context that is canceled when either a or b is done.
// The returned cancel func must be called to release the goroutine when the
// handler ends.
func joinContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-a.Done():
			cancel()
		case <-b.Done():
			cancel()
		}
	}()
	return ctx, cancel
}

// serverBaseCtx is a process-level context that can be canceled on shutdown.
// Defaults to Background if not set.
var serverBaseCtx = context.Background()

// SetBaseContext sets the process-level base context used by handlers.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// maxBodyBytes controls the maximum allowed request body size for JSON
// endpoints.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Log-Level"},
	}))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(MetricsMiddleware)

	// Status godoc
	// @Summary Ad lifecycle status
	// @Produce json
	// @Success 200 {object} types.StatusResponse
	// @Router /status [get]
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.Status()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Post("/initialize", func(w http.ResponseWriter, r *http.Request) {
		runOp(w, r, svc, types.OpRequest{Op: types.OpInitialize})
	})

	r.Route("/ads/{kind}", func(r chi.Router) {
		r.Post("/load", func(w http.ResponseWriter, r *http.Request) {
			kind, ok := kindParam(w, r)
			if !ok {
				return
			}
			var body struct {
				AdID string `json:"ad_id"`
			}
			if !decodeOptionalJSON(w, r, &body) {
				return
			}
			runOp(w, r, svc, types.OpRequest{Op: types.OpLoad, Kind: kind, AdID: body.AdID})
		})
		r.Post("/show", func(w http.ResponseWriter, r *http.Request) {
			if kind, ok := kindParam(w, r); ok {
				runOp(w, r, svc, types.OpRequest{Op: types.OpShow, Kind: kind})
			}
		})
		r.Post("/hide", func(w http.ResponseWriter, r *http.Request) {
			if kind, ok := kindParam(w, r); ok {
				runOp(w, r, svc, types.OpRequest{Op: types.OpHide, Kind: kind})
			}
		})
	})

	// InjectEvent godoc
	// @Summary Inject a backend lifecycle event
	// @Accept json
	// @Produce json
	// @Success 202 {object} types.OpResponse
	// @Failure 400 {object} types.ErrorResponse
	// @Router /events [post]
	r.Post("/events", func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var ev types.Event
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if !types.KnownEventType(ev.Type) {
			writeJSONError(w, http.StatusBadRequest, "unknown event type: "+string(ev.Type))
			return
		}
		svc.Inject(ev)
		logRequest(r, http.StatusAccepted, "event injected", "type", string(ev.Type))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(types.OpResponse{OK: true})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("uninitialized"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// kindParam parses the {kind} URL segment, writing a 400 on unknown kinds.
func kindParam(w http.ResponseWriter, r *http.Request) (types.AdKind, bool) {
	kind, ok := types.ParseAdKind(chi.URLParam(r, "kind"))
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "unknown ad kind: "+chi.URLParam(r, "kind"))
		return "", false
	}
	return kind, true
}

// decodeOptionalJSON decodes a JSON body into v when one is present. An
// empty body is fine; a malformed one or a wrong content type is not.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.ContentLength == 0 {
		return true
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// runOp submits one operation to the tick loop and reports its outcome.
func runOp(w http.ResponseWriter, r *http.Request, svc Service, req types.OpRequest) {
	start := time.Now()
	// Join server base context with request context so shutdown cancels
	// pending submissions too.
	joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	resp, err := svc.Do(joinedCtx, req)
	if err != nil {
		if sim.IsBadRequest(err) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if sim.IsCanceled(err) {
			writeJSONError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	logRequest(r, http.StatusOK, "op done",
		"op", req.Op, "kind", string(req.Kind), "ok", boolLabel(resp.OK), "dur", time.Since(start).String())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
