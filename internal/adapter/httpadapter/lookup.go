package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"github.com/couchcryptid/grib-param-service/internal/observability"
)

type tableSummary struct {
	Center    int    `json:"center"`
	Subcenter int    `json:"subcenter"`
	Version   int    `json:"version"`
	Name      string `json:"name,omitempty"`
	Note      string `json:"note,omitempty"`
	Entries   int    `json:"entries"`
}

type tableDetail struct {
	tableSummary
	Parameters []domain.ParameterEntry `json:"parameters"`
}

type errorBody struct {
	Error string `json:"error"`
}

func summarize(t *domain.ParameterTable) tableSummary {
	k := t.Key()
	return tableSummary{
		Center:    k.Center,
		Subcenter: k.Subcenter,
		Version:   k.Version,
		Name:      t.Name(),
		Note:      t.Note(),
		Entries:   t.Len(),
	}
}

func (s *Server) handleListTables(w http.ResponseWriter, _ *http.Request) {
	tables := s.registry.Tables()
	out := make([]tableSummary, 0, len(tables))
	for _, t := range tables {
		out = append(out, summarize(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTable(w http.ResponseWriter, r *http.Request) {
	key, ok := tableKeyFromPath(w, r)
	if !ok {
		return
	}
	t, found := s.registry.Table(key)
	if !found {
		writeJSON(w, http.StatusNotFound, errorBody{Error: domain.ErrTableNotFound.Error()})
		return
	}
	writeJSON(w, http.StatusOK, tableDetail{tableSummary: summarize(t), Parameters: t.Entries()})
}

func (s *Server) handleGetParameter(w http.ResponseWriter, r *http.Request) {
	key, ok := tableKeyFromPath(w, r)
	if !ok {
		return
	}
	code, ok := pathInt(w, r, "code")
	if !ok {
		return
	}

	entry, err := s.registry.Resolve(key, code)
	switch {
	case err == nil:
		s.metrics.Lookups.WithLabelValues(observability.OutcomeFound).Inc()
		writeJSON(w, http.StatusOK, entry)
	case errors.Is(err, domain.ErrTableNotFound):
		s.metrics.Lookups.WithLabelValues(observability.OutcomeTableNotFound).Inc()
		writeJSON(w, http.StatusNotFound, errorBody{Error: domain.ErrTableNotFound.Error()})
	default:
		s.metrics.Lookups.WithLabelValues(observability.OutcomeCodeNotFound).Inc()
		writeJSON(w, http.StatusNotFound, errorBody{Error: domain.ErrCodeNotFound.Error()})
	}
}

func tableKeyFromPath(w http.ResponseWriter, r *http.Request) (domain.TableKey, bool) {
	var key domain.TableKey
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"center", &key.Center},
		{"subcenter", &key.Subcenter},
		{"version", &key.Version},
	} {
		v, ok := pathInt(w, r, p.name)
		if !ok {
			return domain.TableKey{}, false
		}
		*p.dst = v
	}
	return key, true
}

// pathInt parses a non-negative integer path value, writing a 400 response
// and returning false when it is not one.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil || v < 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid " + name + ": must be a non-negative integer"})
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
