package stubserver

import (
	"net/http"
	"strconv"
)

// ListHandler serves a filtered, sorted, paginated page of a collection in
// the data-plus-total envelope.
func (s *Server) ListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource := r.PathValue("resource")
		query := r.URL.Query()

		opts := listOptions{
			page:    atoiDefault(query.Get("page"), 1),
			limit:   atoiDefault(query.Get("limit"), 10),
			sort:    query.Get("sort"),
			filters: make(map[string]string),
		}
		for field, values := range query {
			switch field {
			case "page", "limit", "sort":
				continue
			}
			if len(values) > 0 {
				opts.filters[field] = values[0]
			}
		}

		records, total := s.store.list(resource, opts)
		writeJSON(w, http.StatusOK, map[string]any{
			"data":  records,
			"total": total,
		})
	}
}

// CreateHandler inserts a record and returns the created representation.
func (s *Server) CreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record := Record{}
		if err := decodeBody(r, &record); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		created := s.store.insert(r.PathValue("resource"), record)
		writeJSON(w, http.StatusCreated, created)
	}
}

func (s *Server) GetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.store.get(r.PathValue("resource"), r.PathValue("id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// UpdateHandler merges the submitted fields into the record. It backs both
// PUT and PATCH.
func (s *Server) UpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields := Record{}
		if err := decodeBody(r, &fields); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		record, ok := s.store.update(r.PathValue("resource"), r.PathValue("id"), fields)
		if !ok {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func (s *Server) DeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.store.remove(r.PathValue("resource"), r.PathValue("id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func atoiDefault(raw string, fallback int) int {
	if value, err := strconv.Atoi(raw); err == nil {
		return value
	}
	return fallback
}
