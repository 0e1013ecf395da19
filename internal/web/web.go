// Package web expone las rutas "de página" de la clínica: el feed JSON de
// vets y el buscador de owners.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"petclinic/internal/domain/clinic"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// OwnersPageSize es el tamaño de página del buscador.
const OwnersPageSize = 5

type vetsResponse struct {
	Vets []clinic.VetPayload `json:"vets"`
}

type ownersResponse struct {
	Owners   []clinic.OwnerPayload `json:"owners"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
	Total    int                   `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func RegisterRoutes(r chi.Router, svc *clinic.Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "web"})

	r.Get("/vets", vetsHandler(svc, log))
	r.Get("/owners", findOwnersHandler(svc, log))
}

// vetsHandler sirve {"vets": [...]}. Queda fuera del swagger de /api.
func vetsHandler(svc *clinic.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vets, err := svc.ListVets(r.Context())
		if err != nil {
			internalError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, vetsResponse{Vets: clinic.SerializeVets(vets)})
	}
}

// findOwnersHandler ordena por apellido y pagina de a OwnersPageSize.
// Una página sin owners es 404; un único resultado redirige al owner.
func findOwnersHandler(svc *clinic.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		res, err := svc.PageOwners(r.Context(), q.Get("lastName"), page, OwnersPageSize)
		if err != nil {
			internalError(w, r, log, err)
			return
		}

		switch {
		case len(res.Owners) == 0:
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "No owners found"})
		case res.Total == 1 && len(res.Owners) == 1:
			http.Redirect(w, r, fmt.Sprintf("/api/owners/%d", res.Owners[0].ID), http.StatusFound)
		default:
			writeJSON(w, http.StatusOK, ownersResponse{
				Owners:   clinic.SerializeOwners(res.Owners, clinic.DefaultOwnerOptions),
				Page:     res.Page,
				PageSize: res.PageSize,
				Total:    res.Total,
			})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func internalError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	log.Error("request failed", map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"path":       r.URL.Path,
		"error":      err.Error(),
	})
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
