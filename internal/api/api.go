// Package api exposes group computations over HTTP.
//
// The API is a thin JSON layer over [group.Group]: every request carries a
// generator list in cycle notation and the response carries the derived
// data. Nothing is stored server side; the endpoints are pure functions of
// their request bodies.
package api

import (
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/permkit/permkit/pkg/errors"
	"github.com/permkit/permkit/pkg/group"
	"github.com/permkit/permkit/pkg/groupio"
	"github.com/permkit/permkit/pkg/perm"
)

// maxListOrder bounds full element listings served over HTTP. Group order
// is factorial in the degree; anything larger must be computed locally.
var maxListOrder = big.NewInt(100000)

// NewRouter builds the HTTP handler. All endpoints accept and return JSON.
//
//	POST /v1/order    -> degree, order, base
//	POST /v1/orbit    -> orbit of a point
//	POST /v1/member   -> membership of an element
//	POST /v1/elements -> full element/word listing (bounded)
//	GET  /healthz     -> liveness probe
func NewRouter(logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/v1/order", handle(logger, handleOrder))
	r.Post("/v1/orbit", handle(logger, handleOrbit))
	r.Post("/v1/member", handle(logger, handleMember))
	r.Post("/v1/elements", handle(logger, handleElements))
	return r
}

// groupRequest is the common request shape: generators in cycle notation
// plus operation-specific fields.
type groupRequest struct {
	Generators []string `json:"generators"`
	Point      int      `json:"point,omitempty"`   // orbit
	Element    string   `json:"element,omitempty"` // member
}

// errorResponse carries a machine-readable code next to the message, so
// API consumers can branch without parsing error text.
type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

// status maps an error code to its HTTP status.
func status(code errors.Code) int {
	switch code {
	case errors.ErrCodeTooLarge:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// writeError encodes err as a coded JSON error. Plain errors fall back to
// ErrCodeInvalidInput, since everything the handlers reject is bad input.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidInput
	}
	writeJSON(w, status(code), errorResponse{Code: code, Error: errors.UserMessage(err)})
}

// handle decodes the request, delegates to fn, and encodes the response.
// Malformed input is the caller's problem (400); everything else the
// handlers produce is a pure computation result.
func handle(logger *log.Logger, fn func(req groupRequest, g *group.Group) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req groupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON"))
			return
		}
		gens, err := groupio.ParseGenerators(req.Generators)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidCycle, err, "bad generator list"))
			return
		}
		resp, err := fn(req, group.New(gens))
		if err != nil {
			writeError(w, err)
			return
		}
		logger.Debug("handled", "path", r.URL.Path, "generators", len(req.Generators))
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleOrder(_ groupRequest, g *group.Group) (any, error) {
	return struct {
		Degree int    `json:"degree"`
		Order  string `json:"order"`
		Base   []int  `json:"base"`
	}{
		Degree: g.Degree(),
		Order:  g.Order().String(),
		Base:   g.Base(),
	}, nil
}

func handleOrbit(req groupRequest, g *group.Group) (any, error) {
	if req.Point < 1 {
		return nil, errors.New(errors.ErrCodeInvalidPoint, "point must be a positive integer, got %d", req.Point)
	}
	return struct {
		Point int   `json:"point"`
		Orbit []int `json:"orbit"`
	}{Point: req.Point, Orbit: g.Orbit(req.Point)}, nil
}

func handleMember(req groupRequest, g *group.Group) (any, error) {
	p, err := perm.Parse(req.Element)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCycle, err, "bad element")
	}
	return struct {
		Element string `json:"element"`
		Member  bool   `json:"member"`
	}{Element: p.String(), Member: g.Contains(p)}, nil
}

func handleElements(_ groupRequest, g *group.Group) (any, error) {
	if g.Order().Cmp(maxListOrder) > 0 {
		return nil, errors.New(errors.ErrCodeTooLarge, "group has order %s; full listings are limited to %s", g.Order(), maxListOrder)
	}
	elems := g.Elements()
	out := make([]string, len(elems))
	for i, p := range elems {
		out[i] = p.String()
	}
	return struct {
		Order    string   `json:"order"`
		Elements []string `json:"elements"`
		Words    [][]int  `json:"words"`
	}{Order: g.Order().String(), Elements: out, Words: g.Words()}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
