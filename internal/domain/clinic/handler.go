package clinic

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el API REST (se espera bajo /api).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	d := deps{svc: svc, log: log.With(map[string]any{"component": "api"})}

	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(d))
		or.Post("/", createOwnerHandler(d))
		or.Get("/{ownerID}", getOwnerHandler(d))
		or.Put("/{ownerID}", updateOwnerHandler(d))
		or.Delete("/{ownerID}", deleteOwnerHandler(d))

		// Pets y visits anidados: primero se resuelve el owner, luego el pet
		or.Get("/{ownerID}/pets", listOwnerPetsHandler(d))
		or.Post("/{ownerID}/pets", createOwnerPetHandler(d))
		or.Get("/{ownerID}/pets/{petID}", getOwnerPetHandler(d))
		or.Put("/{ownerID}/pets/{petID}", updateOwnerPetHandler(d))
		or.Post("/{ownerID}/pets/{petID}/visits", createPetVisitHandler(d))
	})

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(d))
		pr.Get("/{petID}", getPetHandler(d))
		pr.Put("/{petID}", updatePetHandler(d))
		pr.Delete("/{petID}", deletePetHandler(d))
	})

	r.Route("/visits", func(vr chi.Router) {
		vr.Get("/", listVisitsHandler(d))
		vr.Post("/", createVisitHandler(d))
		vr.Get("/{visitID}", getVisitHandler(d))
		vr.Put("/{visitID}", updateVisitHandler(d))
		vr.Delete("/{visitID}", deleteVisitHandler(d))
	})

	r.Route("/vets", func(vr chi.Router) {
		vr.Get("/", listVetsHandler(d))
		vr.Post("/", createVetHandler(d))
		vr.Get("/{vetID}", getVetHandler(d))
		vr.Put("/{vetID}", updateVetHandler(d))
		vr.Delete("/{vetID}", deleteVetHandler(d))
	})

	r.Route("/pettypes", func(tr chi.Router) {
		tr.Get("/", listPetTypesHandler(d))
		tr.Post("/", createPetTypeHandler(d))
		tr.Get("/{petTypeID}", getPetTypeHandler(d))
		tr.Put("/{petTypeID}", updatePetTypeHandler(d))
		tr.Delete("/{petTypeID}", deletePetTypeHandler(d))
	})

	r.Route("/specialties", func(sr chi.Router) {
		sr.Get("/", listSpecialtiesHandler(d))
		sr.Post("/", createSpecialtyHandler(d))
		sr.Get("/{specialtyID}", getSpecialtyHandler(d))
		sr.Put("/{specialtyID}", updateSpecialtyHandler(d))
		sr.Delete("/{specialtyID}", deleteSpecialtyHandler(d))
	})
}

// errorResponse es el cuerpo de todos los errores: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// deps es lo que comparten todos los handlers del API.
type deps struct {
	svc *Service
	log logger.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeCreated agrega Location con la ruta canónica del recurso.
func writeCreated(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, v)
}

// writeServiceError traduce los errores del dominio/parseo a HTTP.
// Lo que no reconoce es 500 y queda logueado con el request id.
func (d deps) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		nf  *NotFoundError
		ve  *ValidationError
		bad *badRequestError
	)
	switch {
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Error())
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.As(err, &bad):
		writeError(w, http.StatusBadRequest, bad.Error())
	case errors.Is(err, errNoInput):
		writeError(w, http.StatusBadRequest, errNoInput.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		d.log.Error("request failed", map[string]any{
			"request_id": middleware.GetRequestID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"error":      err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// pathID lee un id de la URL. Un id no numérico o <= 0 se trata como
// inexistente (404 de la entidad), igual que un id que no está.
func pathID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeNotFound(w http.ResponseWriter, entity string) {
	writeError(w, http.StatusNotFound, entity+" not found")
}

// queryFlag parsea ?name=true|false; ausente o inválido => def.
func queryFlag(r *http.Request, name string, def bool) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
