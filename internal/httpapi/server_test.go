package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adsd/internal/sim"
	"adsd/pkg/types"
)

type mockService struct {
	status types.StatusResponse
	ready  bool
	doErr  error
	doOK   bool
	ops    []types.OpRequest
	events []types.Event
}

func (m *mockService) Status() types.StatusResponse { return m.status }
func (m *mockService) Ready() bool                  { return m.ready }
func (m *mockService) Do(ctx context.Context, req types.OpRequest) (types.OpResponse, error) {
	m.ops = append(m.ops, req)
	if m.doErr != nil {
		return types.OpResponse{}, m.doErr
	}
	return types.OpResponse{OK: m.doOK}, nil
}
func (m *mockService) Inject(ev types.Event) { m.events = append(m.events, ev) }

func TestStatusHandler(t *testing.T) {
	svc := &mockService{status: types.StatusResponse{Initialized: true, PendingEvents: 3}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content-type=%s", ct)
	}
	var body types.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !body.Initialized || body.PendingEvents != 3 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestInitializeHandler(t *testing.T) {
	svc := &mockService{doOK: true}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/initialize", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if len(svc.ops) != 1 || svc.ops[0].Op != types.OpInitialize {
		t.Fatalf("ops=%+v", svc.ops)
	}
	var body types.OpResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !body.OK {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestLoadHandlerWithAdID(t *testing.T) {
	svc := &mockService{doOK: true}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ads/rewarded/load", bytes.NewBufferString(`{"ad_id":"placement-7"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	want := types.OpRequest{Op: types.OpLoad, Kind: types.KindRewarded, AdID: "placement-7"}
	if len(svc.ops) != 1 || svc.ops[0] != want {
		t.Fatalf("ops=%+v, want [%+v]", svc.ops, want)
	}
}

func TestLoadHandlerEmptyBody(t *testing.T) {
	svc := &mockService{doOK: true}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ads/banner/load", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestShowHideHandlers(t *testing.T) {
	svc := &mockService{doOK: true}
	r := NewMux(svc)
	for _, path := range []string{"/ads/interstitial/show", "/ads/interstitial/hide"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", path, w.Code)
		}
	}
	if len(svc.ops) != 2 || svc.ops[0].Op != types.OpShow || svc.ops[1].Op != types.OpHide {
		t.Fatalf("ops=%+v", svc.ops)
	}
}

func TestUnknownKindRejected(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ads/popup/show", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if len(svc.ops) != 0 {
		t.Fatalf("unknown kind reached the service: %+v", svc.ops)
	}
}

func TestOpErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", sim.ErrBadRequest("unknown op"), http.StatusBadRequest},
		{"canceled", sim.ErrCanceled(), http.StatusServiceUnavailable},
		{"generic", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{doErr: tc.err}
			r := NewMux(svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/initialize", nil))
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d", w.Code, tc.want)
			}
			var body types.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("json: %v", err)
			}
			if body.Code != tc.want {
				t.Fatalf("error code=%d, want %d", body.Code, tc.want)
			}
		})
	}
}

func TestInjectEvent(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events",
		bytes.NewBufferString(`{"type":"ad_opened","kind":"rewarded"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if len(svc.events) != 1 || svc.events[0] != types.AdOpened(types.KindRewarded) {
		t.Fatalf("events=%+v", svc.events)
	}
}

func TestInjectEventUnknownType(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"type":"ad_exploded"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if len(svc.events) != 0 {
		t.Fatalf("unknown event reached the service: %+v", svc.events)
	}
}

func TestInjectEventBadJSON(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString("not-json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestInjectEventUnsupportedMediaType(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"type":"ad_opened"}`))
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestInjectEventBodyTooLarge(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	big := make([]byte, (1<<20)+10)
	for i := range big {
		big[i] = 'a'
	}
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for too-large body, got %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz(t *testing.T) {
	svc := &mockService{ready: true}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz_NotReady(t *testing.T) {
	svc := &mockService{ready: false}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "uninitialized") {
		t.Fatalf("body=%q", w.Body.String())
	}
}
