package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/contact"
	"github.com/ibrahimlogs/folio/internal/mapper"
	"github.com/ibrahimlogs/folio/internal/theme"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	key, model := s.store.ActiveModel(r.Context())
	s.renderTheme(w, key, model)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	// The route pattern guarantees a valid key.
	key, err := theme.ParseKey(chi.URLParam(r, "theme"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.renderTheme(w, key, s.store.Model(r.Context(), key))
}

func (s *Server) renderTheme(w http.ResponseWriter, key theme.Key, model canonical.Model) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.registry.Dispatch(key).Render(w, model); err != nil {
		s.log.WithFields(map[string]any{"theme": string(key)}).Error(err, "render failed")
	}
}

func (s *Server) handleContentJSON(w http.ResponseWriter, r *http.Request) {
	key, model := s.store.ActiveModel(r.Context())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"theme":   key,
		"content": model,
	}); err != nil {
		s.log.Error(err, "encode content response")
	}
}

type contactResponse struct {
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	values, err := contactValues(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: "Invalid request body."})
		return
	}

	_, model := s.store.ActiveModel(r.Context())
	fields := model.Sections.Contact.Form.Fields
	if len(fields) == 0 {
		fields = mapper.DefaultFormFields()
	}

	fieldErrs, err := contact.Submit(r.Context(), s.sender, fields, values)
	switch {
	case err != nil:
		s.log.Error(err, "contact submission failed upstream")
		writeJSON(w, http.StatusBadGateway, contactResponse{Message: "Something went wrong."})
	case len(fieldErrs) > 0:
		writeJSON(w, http.StatusUnprocessableEntity, contactResponse{Errors: fieldErrs})
	default:
		writeJSON(w, http.StatusOK, contactResponse{Message: "Message sent!"})
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// contactValues accepts either a JSON object or a form-encoded body.
func contactValues(r *http.Request) (map[string]string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var values map[string]string
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			return nil, err
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	values := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		values[k] = r.PostForm.Get(k)
	}
	return values, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
