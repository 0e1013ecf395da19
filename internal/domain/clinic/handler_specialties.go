package clinic

import (
	"fmt"
	"net/http"
)

// listSpecialtiesHandler godoc
// @Summary Listar specialties
// @Tags specialties
// @Produce json
// @Success 200 {array} SpecialtyPayload
// @Router /specialties [get]
func listSpecialtiesHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.svc.ListSpecialties(r.Context())
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializeSpecialties(items))
	}
}

// getSpecialtyHandler godoc
// @Summary Obtener specialty
// @Tags specialties
// @Produce json
// @Param specialtyID path int true "ID de la specialty"
// @Success 200 {object} SpecialtyPayload
// @Failure 404 {object} errorResponse "Specialty not found"
// @Router /specialties/{specialtyID} [get]
func getSpecialtyHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "specialtyID")
		if !ok {
			writeNotFound(w, EntitySpecialty)
			return
		}
		sp, err := d.svc.GetSpecialty(r.Context(), id)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializeSpecialty(sp))
	}
}

// createSpecialtyHandler godoc
// @Summary Crear specialty
// @Tags specialties
// @Accept json
// @Produce json
// @Param payload body namedRequest true "Nombre de la specialty"
// @Success 201 {object} SpecialtyPayload
// @Header 201 {string} Location "/api/specialties/{id}"
// @Failure 400 {object} errorResponse "name is required"
// @Router /specialties [post]
func createSpecialtyHandler(d deps) http.HandlerFunc {
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

		sp, err := d.svc.CreateSpecialty(r.Context(), SpecialtyInput{Name: name})
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeCreated(w, fmt.Sprintf("/api/specialties/%d", sp.ID), SerializeSpecialty(sp))
	}
}

// updateSpecialtyHandler godoc
// @Summary Actualizar specialty
// @Tags specialties
// @Accept json
// @Produce json
// @Param specialtyID path int true "ID de la specialty"
// @Param payload body namedRequest true "Nuevo nombre"
// @Success 200 {object} SpecialtyPayload
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Specialty not found"
// @Router /specialties/{specialtyID} [put]
func updateSpecialtyHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "specialtyID")
		if !ok {
			writeNotFound(w, EntitySpecialty)
			return
		}
		if _, err := d.svc.GetSpecialty(r.Context(), id); err != nil {
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

		sp, err := d.svc.UpdateSpecialty(r.Context(), id, SpecialtyPatch{Name: name})
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializeSpecialty(sp))
	}
}

// deleteSpecialtyHandler godoc
// @Summary Borrar specialty
// @Description Quita la specialty de los vets que la tenían; los vets no se borran.
// @Tags specialties
// @Param specialtyID path int true "ID de la specialty"
// @Success 204
// @Failure 404 {object} errorResponse "Specialty not found"
// @Router /specialties/{specialtyID} [delete]
func deleteSpecialtyHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "specialtyID")
		if !ok {
			writeNotFound(w, EntitySpecialty)
			return
		}
		if err := d.svc.DeleteSpecialty(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
