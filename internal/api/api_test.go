package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestOrderEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status, body := post(t, srv, "/v1/order", `{"generators": ["(1 2)", "(2 3)"]}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, body)
	}
	if body["order"] != "6" {
		t.Errorf("order = %v, want 6", body["order"])
	}
	if body["degree"] != float64(3) {
		t.Errorf("degree = %v, want 3", body["degree"])
	}
}

func TestOrderTrivialGroup(t *testing.T) {
	srv := newTestServer(t)

	status, body := post(t, srv, "/v1/order", `{"generators": []}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, body)
	}
	if body["order"] != "1" {
		t.Errorf("order = %v, want 1", body["order"])
	}
}

func TestOrbitEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status, body := post(t, srv, "/v1/orbit", `{"generators": ["(1 2)", "(2 3)"], "point": 1}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, body)
	}
	orbit, ok := body["orbit"].([]any)
	if !ok || len(orbit) != 3 {
		t.Errorf("orbit = %v, want 3 points", body["orbit"])
	}

	status, _ = post(t, srv, "/v1/orbit", `{"generators": ["(1 2)"], "point": 0}`)
	if status != http.StatusBadRequest {
		t.Errorf("non-positive point: status = %d, want 400", status)
	}
}

func TestMemberEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status, body := post(t, srv, "/v1/member", `{"generators": ["(1 2)", "(2 3)"], "element": "(1 3)"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, body)
	}
	if body["member"] != true {
		t.Errorf("member = %v, want true", body["member"])
	}

	_, body = post(t, srv, "/v1/member", `{"generators": ["(1 2)", "(2 3)"], "element": "(1 2 4)"}`)
	if body["member"] != false {
		t.Errorf("member = %v, want false", body["member"])
	}
}

func TestElementsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status, body := post(t, srv, "/v1/elements", `{"generators": ["(1 2)", "(2 3)"]}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, body)
	}
	elems, ok := body["elements"].([]any)
	if !ok || len(elems) != 6 {
		t.Fatalf("elements = %v, want 6 entries", body["elements"])
	}
	if elems[0] != "()" {
		t.Errorf("elements[0] = %v, want ()", elems[0])
	}
	words, ok := body["words"].([]any)
	if !ok || len(words) != 6 {
		t.Errorf("words = %v, want 6 entries", body["words"])
	}
}

func TestElementsTooLarge(t *testing.T) {
	srv := newTestServer(t)

	// S9 has order 362880, over the listing bound.
	status, _ := post(t, srv, "/v1/elements", `{"generators": ["(1 2)", "(1 2 3 4 5 6 7 8 9)"]}`)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
}

func TestErrorCodes(t *testing.T) {
	srv := newTestServer(t)

	_, body := post(t, srv, "/v1/elements", `{"generators": ["(1 2)", "(1 2 3 4 5 6 7 8 9)"]}`)
	if body["code"] != "TOO_LARGE" {
		t.Errorf("code = %v, want TOO_LARGE", body["code"])
	}

	_, body = post(t, srv, "/v1/orbit", `{"generators": ["(1 2)"], "point": -1}`)
	if body["code"] != "INVALID_POINT" {
		t.Errorf("code = %v, want INVALID_POINT", body["code"])
	}

	_, body = post(t, srv, "/v1/member", `{"generators": ["(1 2)"], "element": "(1"}`)
	if body["code"] != "INVALID_CYCLE" {
		t.Errorf("code = %v, want INVALID_CYCLE", body["code"])
	}
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer(t)

	status, _ := post(t, srv, "/v1/order", `{"generators": ["(1 x)"]}`)
	if status != http.StatusBadRequest {
		t.Errorf("malformed generator: status = %d, want 400", status)
	}
	status, _ = post(t, srv, "/v1/order", `not json`)
	if status != http.StatusBadRequest {
		t.Errorf("malformed JSON: status = %d, want 400", status)
	}
}
