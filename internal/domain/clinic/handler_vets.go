package clinic

import (
	"fmt"
	"net/http"
)

// vetRequest documenta el cuerpo de vets. specialties acepta {"id": n} o {"name": s};
// las referencias que no existen se ignoran.
type vetRequest struct {
	FirstName   string             `json:"firstName" example:"Helen"`
	LastName    string             `json:"lastName" example:"Leary"`
	Specialties []SpecialtyPayload `json:"specialties"`
}

// listVetsHandler godoc
// @Summary Listar vets
// @Tags vets
// @Produce json
// @Success 200 {array} VetPayload
// @Router /vets [get]
func listVetsHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vets, err := d.svc.ListVets(r.Context())
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializeVets(vets))
	}
}

// getVetHandler godoc
// @Summary Obtener vet
// @Tags vets
// @Produce json
// @Param vetID path int true "ID del vet"
// @Success 200 {object} VetPayload
// @Failure 404 {object} errorResponse "Vet not found"
// @Router /vets/{vetID} [get]
func getVetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "vetID")
		if !ok {
			writeNotFound(w, EntityVet)
			return
		}
		v, err := d.svc.GetVet(r.Context(), id)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializeVet(v))
	}
}

// createVetHandler godoc
// @Summary Crear vet
// @Tags vets
// @Accept json
// @Produce json
// @Param payload body vetRequest true "Datos del vet"
// @Success 201 {object} VetPayload
// @Header 201 {string} Location "/api/vets/{id}"
// @Failure 400 {object} errorResponse
// @Router /vets [post]
func createVetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePayload(r, false)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		var in VetInput
		if in.FirstName, err = p.strValue("firstName"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		if in.LastName, err = p.strValue("lastName"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		refs, err := p.specialties("specialties")
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		if refs != nil {
			in.Specialties = *refs
		}

		v, err := d.svc.CreateVet(r.Context(), in)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeCreated(w, fmt.Sprintf("/api/vets/%d", v.ID), SerializeVet(v))
	}
}

// updateVetHandler godoc
// @Summary Actualizar vet
// @Description Actualización parcial. Si viene `specialties` reemplaza el set completo (`[]` o null lo vacía).
// @Tags vets
// @Accept json
// @Produce json
// @Param vetID path int true "ID del vet"
// @Param payload body vetRequest true "Campos a modificar"
// @Success 200 {object} VetPayload
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Vet not found"
// @Router /vets/{vetID} [put]
func updateVetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "vetID")
		if !ok {
			writeNotFound(w, EntityVet)
			return
		}
		if _, err := d.svc.GetVet(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		p, err := decodePayload(r, true)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		var patch VetPatch
		if patch.FirstName, err = p.str("firstName"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		if patch.LastName, err = p.str("lastName"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		if patch.Specialties, err = p.specialties("specialties"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		v, err := d.svc.UpdateVet(r.Context(), id, patch)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializeVet(v))
	}
}

// deleteVetHandler godoc
// @Summary Borrar vet
// @Description Borra el vet y sus asociaciones; las specialties no se tocan.
// @Tags vets
// @Param vetID path int true "ID del vet"
// @Success 204
// @Failure 404 {object} errorResponse "Vet not found"
// @Router /vets/{vetID} [delete]
func deleteVetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "vetID")
		if !ok {
			writeNotFound(w, EntityVet)
			return
		}
		if err := d.svc.DeleteVet(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
