package clinic

import (
	"fmt"
	"net/http"
)

// namedRequest es el cuerpo de pettypes y specialties.
type namedRequest struct {
	Name string `json:"name" example:"hamster"`
}

// listPetTypesHandler godoc
// @Summary Listar pet types
// @Tags pettypes
// @Produce json
// @Success 200 {array} PetTypePayload
// @Router /pettypes [get]
func listPetTypesHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.svc.ListPetTypes(r.Context())
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializePetTypes(items))
	}
}

// getPetTypeHandler godoc
// @Summary Obtener pet type
// @Tags pettypes
// @Produce json
// @Param petTypeID path int true "ID del pet type"
// @Success 200 {object} PetTypePayload
// @Failure 404 {object} errorResponse "Pet type not found"
// @Router /pettypes/{petTypeID} [get]
func getPetTypeHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petTypeID")
		if !ok {
			writeNotFound(w, EntityPetType)
			return
		}
		t, err := d.svc.GetPetType(r.Context(), id)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializePetType(t))
	}
}

// createPetTypeHandler godoc
// @Summary Crear pet type
// @Tags pettypes
// @Accept json
// @Produce json
// @Param payload body namedRequest true "Nombre del tipo"
// @Success 201 {object} PetTypePayload
// @Header 201 {string} Location "/api/pettypes/{id}"
// @Failure 400 {object} errorResponse "name is required"
// @Router /pettypes [post]
func createPetTypeHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePayload(r, false)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		name, err := p.strValue("name")
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		t, err := d.svc.CreatePetType(r.Context(), PetTypeInput{Name: name})
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeCreated(w, fmt.Sprintf("/api/pettypes/%d", t.ID), SerializePetType(t))
	}
}

// updatePetTypeHandler godoc
// @Summary Actualizar pet type
// @Tags pettypes
// @Accept json
// @Produce json
// @Param petTypeID path int true "ID del pet type"
// @Param payload body namedRequest true "Nuevo nombre"
// @Success 200 {object} PetTypePayload
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Pet type not found"
// @Router /pettypes/{petTypeID} [put]
func updatePetTypeHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petTypeID")
		if !ok {
			writeNotFound(w, EntityPetType)
			return
		}
		if _, err := d.svc.GetPetType(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		p, err := decodePayload(r, true)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		name, err := p.str("name")
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		t, err := d.svc.UpdatePetType(r.Context(), id, PetTypePatch{Name: name})
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializePetType(t))
	}
}

// deletePetTypeHandler godoc
// @Summary Borrar pet type
// @Description Los pets que lo referenciaban quedan con type null.
// @Tags pettypes
// @Param petTypeID path int true "ID del pet type"
// @Success 204
// @Failure 404 {object} errorResponse "Pet type not found"
// @Router /pettypes/{petTypeID} [delete]
func deletePetTypeHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petTypeID")
		if !ok {
			writeNotFound(w, EntityPetType)
			return
		}
		if err := d.svc.DeletePetType(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
