package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	cfgpkg "github.com/rzbill/todo/internal/config"
	"github.com/rzbill/todo/internal/requestlog"
	"github.com/rzbill/todo/internal/runtime"
	todosvc "github.com/rzbill/todo/internal/services/todos"
	"github.com/rzbill/todo/internal/todo"
	logpkg "github.com/rzbill/todo/pkg/log"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	rt, err := runtime.Open(runtime.Options{
		DataFile: filepath.Join(t.TempDir(), "todos.json"),
		Config:   cfgpkg.Default(),
	})
	if err != nil {
		t.Fatalf("rt open: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	logger, _ := logpkg.ApplyConfig(&logpkg.Config{Level: "error", Format: "text"})
	return New(rt, logger)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	return w
}

func decodeItem(t *testing.T, w *httptest.ResponseRecorder) todo.Item {
	t.Helper()
	var item todo.Item
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode item: %v (body %q)", err, w.Body.String())
	}
	return item
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/healthz", "")
	if w.Code != 200 {
		t.Fatalf("status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestCreateOnEmptyStore(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/todos", `{"title":"buy milk"}`)
	if w.Code != 200 {
		t.Fatalf("status: %d body: %q", w.Code, w.Body.String())
	}
	item := decodeItem(t, w)
	if item.ID != 1 || item.Title != "buy milk" || item.Completed {
		t.Fatalf("created item: %+v", item)
	}
}

func TestCreateHonorsCompleted(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/todos", `{"title":"walk dog","completed":true}`)
	if w.Code != 200 {
		t.Fatalf("status: %d", w.Code)
	}
	if item := decodeItem(t, w); !item.Completed {
		t.Fatalf("completed not honored: %+v", item)
	}
}

func TestCreateMissingTitle(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{`{}`, `{"title":""}`, `{"completed":true}`} {
		w := do(t, s, http.MethodPost, "/todos", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status %d", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Title is required") {
			t.Fatalf("body %q: error body %q", body, w.Body.String())
		}
	}
}

func TestCreateMalformedBody(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/todos", `{"title":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid request body") {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestListReturnsAll(t *testing.T) {
	s := newTestServer(t)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"a"}`)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"b","completed":true}`)

	w := do(t, s, http.MethodGet, "/todos", "")
	if w.Code != 200 {
		t.Fatalf("status: %d", w.Code)
	}
	var items []todo.Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("items: %+v", items)
	}
}

func TestListFilter(t *testing.T) {
	s := newTestServer(t)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"a"}`)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"b","completed":true}`)

	w := do(t, s, http.MethodGet, "/todos?filter=completed%20%3D%3D%20true", "")
	if w.Code != 200 {
		t.Fatalf("status: %d body: %q", w.Code, w.Body.String())
	}
	var items []todo.Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 1 || items[0].Title != "b" {
		t.Fatalf("filtered items: %+v", items)
	}
}

func TestListRejectsBadFilter(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/todos?filter=due%20%3D%3D", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid filter") {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestGetByID(t *testing.T) {
	s := newTestServer(t)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"a"}`)

	w := do(t, s, http.MethodGet, "/todos/?id=1", "")
	if w.Code != 200 {
		t.Fatalf("status: %d", w.Code)
	}
	if item := decodeItem(t, w); item.Title != "a" {
		t.Fatalf("item: %+v", item)
	}
}

func TestGetInvalidID(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/todos/?id=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "Invalid id" {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestGetMissingIDParam(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/todos/", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestGetNotFoundIsServerError(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/todos/?id=99", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "Error reading todo" {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestUpdateMergesPartialBody(t *testing.T) {
	s := newTestServer(t)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"a"}`)

	w := do(t, s, http.MethodPut, "/todos/?id=1", `{"title":"a2"}`)
	if w.Code != 200 {
		t.Fatalf("status: %d body: %q", w.Code, w.Body.String())
	}
	item := decodeItem(t, w)
	if item.Title != "a2" || item.Completed {
		t.Fatalf("item after title-only update: %+v", item)
	}

	w = do(t, s, http.MethodPut, "/todos/?id=1", `{"title":"a2","completed":true}`)
	if w.Code != 200 {
		t.Fatalf("status: %d", w.Code)
	}
	if item := decodeItem(t, w); !item.Completed {
		t.Fatalf("item after completed update: %+v", item)
	}
}

func TestUpdateRequiresTitle(t *testing.T) {
	s := newTestServer(t)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"a"}`)

	w := do(t, s, http.MethodPut, "/todos/?id=1", `{"title":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Title is required") {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPut, "/todos/?id=99", `{"title":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Todo not found") {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestUpdateInvalidID(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPut, "/todos/?id=abc", `{"title":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid id") {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestDeleteReturnsItem(t *testing.T) {
	s := newTestServer(t)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"a"}`)
	_ = do(t, s, http.MethodPost, "/todos", `{"title":"b"}`)

	w := do(t, s, http.MethodDelete, "/todos/?id=1", "")
	if w.Code != 200 {
		t.Fatalf("status: %d", w.Code)
	}
	if item := decodeItem(t, w); item.Title != "a" {
		t.Fatalf("deleted item: %+v", item)
	}

	w = do(t, s, http.MethodDelete, "/todos/?id=1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status: %d", w.Code)
	}
}

func TestDeleteNotFound(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodDelete, "/todos/?id=99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Todo not found") {
		t.Fatalf("body: %q", w.Body.String())
	}
}

func TestUnknownRoutesAndMethodsAre404(t *testing.T) {
	s := newTestServer(t)
	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodPatch, "/todos"},
		{http.MethodPost, "/todos/?id=1"},
		{http.MethodPatch, "/todos/?id=1"},
	}
	for _, tc := range cases {
		w := do(t, s, tc.method, tc.target, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s: status %d", tc.method, tc.target, w.Code)
		}
	}
}

// captureSink records request log events for middleware assertions.
type captureSink struct {
	events []requestlog.Event
}

func (s *captureSink) Append(ev requestlog.Event) error {
	s.events = append(s.events, ev)
	return nil
}

func (s *captureSink) Close() error { return nil }

func TestMiddlewareNotifiesEveryRequest(t *testing.T) {
	rt, err := runtime.Open(runtime.Options{
		DataFile: filepath.Join(t.TempDir(), "todos.json"),
		Config:   cfgpkg.Default(),
	})
	if err != nil {
		t.Fatalf("rt open: %v", err)
	}
	defer rt.Close()
	logger, _ := logpkg.ApplyConfig(&logpkg.Config{Level: "error", Format: "text"})

	sink := &captureSink{}
	n, err := requestlog.New(requestlog.Options{Sink: sink, Logger: logger})
	if err != nil {
		t.Fatalf("notifier: %v", err)
	}
	s := NewWithService(rt, todosvc.New(rt), n, logger)

	_ = do(t, s, http.MethodPost, "/todos", `{"title":"a"}`)
	_ = do(t, s, http.MethodGet, "/todos?filter=completed%20%3D%3D%20false", "")
	_ = do(t, s, http.MethodGet, "/unknown/route", "")

	if err := n.Close(); err != nil {
		t.Fatalf("notifier close: %v", err)
	}

	want := []requestlog.Event{
		{Method: "POST", Path: "/todos"},
		{Method: "GET", Path: "/todos"},
		{Method: "GET", Path: "/unknown/route"},
	}
	if len(sink.events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(sink.events), len(want), sink.events)
	}
	for i, ev := range want {
		if sink.events[i] != ev {
			t.Fatalf("event %d = %+v, want %+v", i, sink.events[i], ev)
		}
	}
}
