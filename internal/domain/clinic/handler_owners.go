package clinic

import (
	"fmt"
	"net/http"
)

// ownerRequest documenta el cuerpo de POST/PUT /owners (en PUT todo es opcional).
type ownerRequest struct {
	FirstName string `json:"firstName" example:"Jean"`
	LastName  string `json:"lastName" example:"Coleman"`
	Address   string `json:"address" example:"105 N. Lake St."`
	City      string `json:"city" example:"Monona"`
	Telephone string `json:"telephone" example:"6085552654"`
}

// listOwnersHandler godoc
// @Summary Listar owners
// @Description Devuelve los owners con sus pets y visits. `lastName` filtra por prefijo del apellido sin distinguir mayúsculas.
// @Tags owners
// @Produce json
// @Param lastName query string false "Prefijo del apellido"
// @Param includePets query bool false "Incluir pets (default true)"
// @Success 200 {array} OwnerPayload
// @Failure 500 {object} errorResponse
// @Router /owners [get]
func listOwnersHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owners, err := d.svc.ListOwners(r.Context(), r.URL.Query().Get("lastName"))
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		opts := OwnerOptions{IncludePets: queryFlag(r, "includePets", true)}
		writeJSON(w, http.StatusOK, SerializeOwners(owners, opts))
	}
}

// getOwnerHandler godoc
// @Summary Obtener owner
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param includePets query bool false "Incluir pets (default true)"
// @Success 200 {object} OwnerPayload
// @Failure 404 {object} errorResponse "Owner not found"
// @Router /owners/{ownerID} [get]
func getOwnerHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerID")
		if !ok {
			writeNotFound(w, EntityOwner)
			return
		}

		o, err := d.svc.GetOwner(r.Context(), id)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		opts := OwnerOptions{IncludePets: queryFlag(r, "includePets", true)}
		writeJSON(w, http.StatusOK, SerializeOwner(o, opts))
	}
}

// createOwnerHandler godoc
// @Summary Crear owner
// @Description Todos los campos son obligatorios; se informa el primero que falte.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del owner"
// @Success 201 {object} OwnerPayload
// @Header 201 {string} Location "/api/owners/{id}"
// @Failure 400 {object} errorResponse "<field> is required / No input data provided"
// @Router /owners [post]
func createOwnerHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePayload(r, false)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		var in OwnerInput
		for _, f := range []struct {
			key string
			dst *string
		}{
			{"firstName", &in.FirstName},
			{"lastName", &in.LastName},
			{"address", &in.Address},
			{"city", &in.City},
			{"telephone", &in.Telephone},
		} {
			if *f.dst, err = p.strValue(f.key); err != nil {
				d.writeServiceError(w, r, err)
				return
			}
		}

		o, err := d.svc.CreateOwner(r.Context(), in)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeCreated(w, fmt.Sprintf("/api/owners/%d", o.ID), SerializeOwner(o, DefaultOwnerOptions))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar owner
// @Description Actualización parcial: solo se modifican los campos enviados.
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param payload body ownerRequest true "Campos a modificar"
// @Success 200 {object} OwnerPayload
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Owner not found"
// @Router /owners/{ownerID} [put]
func updateOwnerHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerID")
		if !ok {
			writeNotFound(w, EntityOwner)
			return
		}
		if err := d.svc.RequireOwner(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		p, err := decodePayload(r, true)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		var patch OwnerPatch
		for _, f := range []struct {
			key string
			dst **string
		}{
			{"firstName", &patch.FirstName},
			{"lastName", &patch.LastName},
			{"address", &patch.Address},
			{"city", &patch.City},
			{"telephone", &patch.Telephone},
		} {
			if *f.dst, err = p.str(f.key); err != nil {
				d.writeServiceError(w, r, err)
				return
			}
		}

		o, err := d.svc.UpdateOwner(r.Context(), id, patch)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializeOwner(o, DefaultOwnerOptions))
	}
}

// deleteOwnerHandler godoc
// @Summary Borrar owner
// @Description Borra el owner junto con sus pets y las visits de esos pets.
// @Tags owners
// @Param ownerID path int true "ID del owner"
// @Success 204
// @Failure 404 {object} errorResponse "Owner not found"
// @Router /owners/{ownerID} [delete]
func deleteOwnerHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerID")
		if !ok {
			writeNotFound(w, EntityOwner)
			return
		}
		if err := d.svc.DeleteOwner(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listOwnerPetsHandler godoc
// @Summary Listar pets de un owner
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {array} PetPayload
// @Failure 404 {object} errorResponse "Owner not found"
// @Router /owners/{ownerID}/pets [get]
func listOwnerPetsHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerID")
		if !ok {
			writeNotFound(w, EntityOwner)
			return
		}

		o, err := d.svc.GetOwner(r.Context(), id)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		out := make([]PetPayload, 0, len(o.Pets))
		for _, pet := range o.Pets {
			out = append(out, SerializePet(pet, nil, DefaultPetOptions))
		}
		writeJSON(w, http.StatusOK, out)
	}
}
