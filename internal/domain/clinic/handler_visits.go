package clinic

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// visitRequest documenta el cuerpo de visits. date es opcional (default: hoy).
type visitRequest struct {
	Date        string `json:"date" example:"2013-01-01"`
	Description string `json:"description" example:"rabies shot"`
	PetID       int64  `json:"petId,omitempty" example:"7"`
}

func (d deps) serializeVisit(ctx context.Context, v Visit, opts VisitOptions) (VisitPayload, error) {
	if !opts.IncludePet {
		return SerializeVisit(v, nil, opts), nil
	}
	p, err := d.svc.PetOf(ctx, v)
	if err != nil {
		return VisitPayload{}, err
	}
	return SerializeVisit(v, &p, opts), nil
}

// listVisitsHandler godoc
// @Summary Listar visits
// @Description Ordenadas por fecha ascendente.
// @Tags visits
// @Produce json
// @Param petId query int false "Filtrar por pet"
// @Param includePet query bool false "Embeber el pet (default false)"
// @Success 200 {array} VisitPayload
// @Failure 400 {object} errorResponse
// @Router /visits [get]
func listVisitsHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var petID int64
		if v := r.URL.Query().Get("petId"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "petId must be an integer")
				return
			}
			petID = n
		}

		visits, err := d.svc.ListVisits(r.Context(), petID)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		opts := VisitOptions{IncludePet: queryFlag(r, "includePet", false)}
		out := make([]VisitPayload, 0, len(visits))
		for _, v := range visits {
			vp, err := d.serializeVisit(r.Context(), v, opts)
			if err != nil {
				d.writeServiceError(w, r, err)
				return
			}
			out = append(out, vp)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getVisitHandler godoc
// @Summary Obtener visit
// @Tags visits
// @Produce json
// @Param visitID path int true "ID de la visit"
// @Param includePet query bool false "Embeber el pet (default false)"
// @Success 200 {object} VisitPayload
// @Failure 404 {object} errorResponse "Visit not found"
// @Router /visits/{visitID} [get]
func getVisitHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "visitID")
		if !ok {
			writeNotFound(w, EntityVisit)
			return
		}

		v, err := d.svc.GetVisit(r.Context(), id)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		out, err := d.serializeVisit(r.Context(), v, VisitOptions{IncludePet: queryFlag(r, "includePet", false)})
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createVisitHandler godoc
// @Summary Crear visit
// @Description `description` y `petId` son obligatorios; un `petId` inexistente es 404.
// @Tags visits
// @Accept json
// @Produce json
// @Param payload body visitRequest true "Datos de la visit"
// @Success 201 {object} VisitPayload
// @Header 201 {string} Location "/api/visits/{id}"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Pet not found"
// @Router /visits [post]
func createVisitHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePayload(r, false)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		petID, err := p.id("petId")
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		var pid int64
		if petID != nil {
			pid = *petID
		}
		in, err := visitInputFrom(p, pid)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		d.createVisit(w, r, in)
	}
}

// createPetVisitHandler godoc
// @Summary Agregar visit a un pet
// @Description `description` es obligatorio; `date` por defecto es hoy.
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID del pet"
// @Param payload body visitRequest true "Datos de la visit"
// @Success 201 {object} VisitPayload
// @Header 201 {string} Location "/api/visits/{id}"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Owner not found / Pet not found"
// @Router /owners/{ownerID}/pets/{petID}/visits [post]
func createPetVisitHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, ok := d.ownerPet(w, r)
		if !ok {
			return
		}

		p, err := decodePayload(r, false)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		in, err := visitInputFrom(p, pet.ID)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		d.createVisit(w, r, in)
	}
}

func (d deps) createVisit(w http.ResponseWriter, r *http.Request, in VisitInput) {
	v, err := d.svc.CreateVisit(r.Context(), in)
	if err != nil {
		d.writeServiceError(w, r, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/visits/%d", v.ID), SerializeVisit(v, nil, VisitOptions{}))
}

// updateVisitHandler godoc
// @Summary Actualizar visit
// @Description Actualización parcial. `date: null` limpia la fecha; `petId` mueve la visit a otro pet.
// @Tags visits
// @Accept json
// @Produce json
// @Param visitID path int true "ID de la visit"
// @Param payload body visitRequest true "Campos a modificar"
// @Success 200 {object} VisitPayload
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Visit not found / Pet not found"
// @Router /visits/{visitID} [put]
func updateVisitHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "visitID")
		if !ok {
			writeNotFound(w, EntityVisit)
			return
		}
		if _, err := d.svc.GetVisit(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		p, err := decodePayload(r, true)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		var patch VisitPatch
		if patch.Date, err = p.date("date"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		if patch.Description, err = p.str("description"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		if patch.PetID, err = p.id("petId"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		v, err := d.svc.UpdateVisit(r.Context(), id, patch)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializeVisit(v, nil, VisitOptions{}))
	}
}

// deleteVisitHandler godoc
// @Summary Borrar visit
// @Tags visits
// @Param visitID path int true "ID de la visit"
// @Success 204
// @Failure 404 {object} errorResponse "Visit not found"
// @Router /visits/{visitID} [delete]
func deleteVisitHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "visitID")
		if !ok {
			writeNotFound(w, EntityVisit)
			return
		}
		if err := d.svc.DeleteVisit(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// visitInputFrom informa los obligatorios antes que un date mal formado.
func visitInputFrom(p payload, petID int64) (VisitInput, error) {
	in := VisitInput{PetID: petID}

	desc, err := p.strValue("description")
	if err != nil {
		return in, err
	}
	in.Description = desc
	if err := in.Validate(); err != nil {
		return in, err
	}

	date, err := p.date("date")
	if err != nil {
		return in, err
	}
	in.Date = date.Value
	return in, nil
}
