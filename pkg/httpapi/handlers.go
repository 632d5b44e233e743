package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/aesthetic/pkg/logger"
	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

// maxBodyBytes caps the generation request body.
const maxBodyBytes = 1 << 16

// paramsRequest leaves every field optional so omitted values fall back to
// the configured defaults.
type paramsRequest struct {
	A             *int64   `json:"a"`
	C             *int64   `json:"c"`
	M             *int64   `json:"m"`
	EntropyWeight *float64 `json:"entropy_weight"`
}

func (p paramsRequest) merge(base namegen.Params) namegen.Params {
	if p.A != nil {
		base.A = *p.A
	}
	if p.C != nil {
		base.C = *p.C
	}
	if p.M != nil {
		base.M = *p.M
	}
	if p.EntropyWeight != nil {
		base.EntropyWeight = *p.EntropyWeight
	}
	return base
}

type nameResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DebugLog  string    `json:"debug_log"`
	Exhausted bool      `json:"exhausted"`
	CreatedAt time.Time `json:"created_at"`
}

func newNameResponse(res namegen.Result) nameResponse {
	return nameResponse{
		ID:        res.ID,
		Name:      res.Name,
		DebugLog:  res.DebugLog,
		Exhausted: res.Exhausted,
		CreatedAt: res.CreatedAt,
	}
}

type randomResponse struct {
	Value int `json:"value"`
}

type rulesResponse struct {
	Rules []string `json:"rules"`
}

func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	var req paramsRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		a.fail(w, r, errors.Join(errInvalidRequest, err), "bad_request")
		return
	}
	p := req.merge(a.defaults)

	reset := true
	if v := r.URL.Query().Get("reset"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			a.fail(w, r, fmt.Errorf("%w: reset must be a boolean", errInvalidRequest), "bad_request")
			return
		}
		reset = b
	}
	if err := p.Validate(); err != nil {
		a.fail(w, r, err, "invalid_parameter")
		return
	}
	if reset {
		a.gen.ResetSeed()
	}

	res, err := a.gen.Generate(r.Context(), p)
	if err != nil {
		a.fail(w, r, err, "generate")
		return
	}
	a.history.Add(res)
	writeJSON(w, http.StatusCreated, newNameResponse(res))
}

func (a *API) listNames(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			a.fail(w, r, fmt.Errorf("%w: limit must be a non-negative integer", errInvalidRequest), "bad_request")
			return
		}
		limit = n
	}
	items := a.history.List(limit)
	out := make([]nameResponse, 0, len(items))
	for _, res := range items {
		out = append(out, newNameResponse(res))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) getName(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, fmt.Errorf("%w: malformed id", errInvalidRequest), "bad_request")
		return
	}
	res, ok := a.history.Get(id)
	if !ok {
		a.fail(w, r, fmt.Errorf("name %s: %w", id, ErrNotFound), "not_found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *API) clearNames(w http.ResponseWriter, _ *http.Request) {
	a.history.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) random(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	maxVal, err := strconv.Atoi(q.Get("max"))
	if err != nil {
		a.fail(w, r, fmt.Errorf("%w: max must be an integer", namegen.ErrInvalidParameter), "invalid_parameter")
		return
	}
	p, err := paramsFromQuery(q.Get, a.defaults)
	if err != nil {
		a.fail(w, r, err, "invalid_parameter")
		return
	}
	v, err := a.gen.Random(maxVal, p)
	if err != nil {
		a.fail(w, r, err, "invalid_parameter")
		return
	}
	writeJSON(w, http.StatusOK, randomResponse{Value: v})
}

func (a *API) resetSeed(w http.ResponseWriter, _ *http.Request) {
	a.gen.ResetSeed()
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) rules(w http.ResponseWriter, _ *http.Request) {
	rules := a.gen.Rules()
	names := make([]string, 0, len(rules))
	for _, rule := range rules {
		names = append(names, rule.Name)
	}
	writeJSON(w, http.StatusOK, rulesResponse{Rules: names})
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error, reason string) {
	if a.metrics != nil {
		a.metrics.ObserveError(reason)
	}
	if errorStatus(err) >= http.StatusInternalServerError {
		a.logger.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}
	writeError(w, err)
}

// paramsFromQuery reads a, c, m and w from the query, keeping base values for
// anything absent.
func paramsFromQuery(get func(string) string, base namegen.Params) (namegen.Params, error) {
	ints := []struct {
		key string
		dst *int64
	}{{"a", &base.A}, {"c", &base.C}, {"m", &base.M}}
	for _, f := range ints {
		if v := get(f.key); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return namegen.Params{}, fmt.Errorf("%w: %s must be an integer", namegen.ErrInvalidParameter, f.key)
			}
			*f.dst = n
		}
	}
	if v := get("w"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return namegen.Params{}, fmt.Errorf("%w: w must be a number", namegen.ErrInvalidParameter)
		}
		base.EntropyWeight = f
	}
	return base, nil
}
