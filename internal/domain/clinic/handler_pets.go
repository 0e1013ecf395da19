package clinic

import (
	"context"
	"fmt"
	"net/http"
)

// petRequest documenta el cuerpo de pets. type acepta {"id": n} o n.
type petRequest struct {
	Name      string         `json:"name" example:"Leo"`
	BirthDate string         `json:"birthDate" example:"2010-09-07"`
	Type      PetTypePayload `json:"type"`
	OwnerID   int64          `json:"ownerId,omitempty"`
}

// serializePet embebe el owner solo si se pidió.
func (d deps) serializePet(ctx context.Context, p Pet, opts PetOptions) (PetPayload, error) {
	if !opts.IncludeOwner {
		return SerializePet(p, nil, opts), nil
	}
	o, err := d.svc.OwnerOf(ctx, p)
	if err != nil {
		return PetPayload{}, err
	}
	return SerializePet(p, &o, opts), nil
}

func petOptions(r *http.Request) PetOptions {
	return PetOptions{
		IncludeVisits: queryFlag(r, "includeVisits", true),
		IncludeOwner:  queryFlag(r, "includeOwner", false),
	}
}

// listPetsHandler godoc
// @Summary Listar pets
// @Tags pets
// @Produce json
// @Param includeOwner query bool false "Embeber el owner (default false)"
// @Param includeVisits query bool false "Incluir visits (default true)"
// @Success 200 {array} PetPayload
// @Router /pets [get]
func listPetsHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := d.svc.ListPets(r.Context(), 0)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		opts := petOptions(r)
		out := make([]PetPayload, 0, len(pets))
		for _, p := range pets {
			pp, err := d.serializePet(r.Context(), p, opts)
			if err != nil {
				d.writeServiceError(w, r, err)
				return
			}
			out = append(out, pp)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener pet
// @Tags pets
// @Produce json
// @Param petID path int true "ID del pet"
// @Param includeOwner query bool false "Embeber el owner (default false)"
// @Success 200 {object} PetPayload
// @Failure 404 {object} errorResponse "Pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petID")
		if !ok {
			writeNotFound(w, EntityPet)
			return
		}

		p, err := d.svc.GetPet(r.Context(), id)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		out, err := d.serializePet(r.Context(), p, petOptions(r))
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// updatePetHandler godoc
// @Summary Actualizar pet
// @Description Actualización parcial. `birthDate: null` limpia la fecha; `type: null` no lo modifica; un `ownerId` inexistente es 404.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID del pet"
// @Param payload body petRequest true "Campos a modificar"
// @Success 200 {object} PetPayload
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Pet not found / Owner not found"
// @Router /pets/{petID} [put]
func updatePetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petID")
		if !ok {
			writeNotFound(w, EntityPet)
			return
		}
		if _, err := d.svc.GetPet(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		p, err := decodePayload(r, true)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		patch, err := petPatchFrom(p)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		if patch.OwnerID, err = p.id("ownerId"); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		pet, err := d.svc.UpdatePet(r.Context(), id, patch)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SerializePet(pet, nil, DefaultPetOptions))
	}
}

// deletePetHandler godoc
// @Summary Borrar pet
// @Description Borra el pet y sus visits.
// @Tags pets
// @Param petID path int true "ID del pet"
// @Success 204
// @Failure 404 {object} errorResponse "Pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petID")
		if !ok {
			writeNotFound(w, EntityPet)
			return
		}
		if err := d.svc.DeletePet(r.Context(), id); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// createOwnerPetHandler godoc
// @Summary Agregar pet a un owner
// @Description `name` es obligatorio. Un `type` inexistente queda en null.
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param payload body petRequest true "Datos del pet"
// @Success 201 {object} PetPayload
// @Header 201 {string} Location "/api/pets/{id}"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Owner not found"
// @Router /owners/{ownerID}/pets [post]
func createOwnerPetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(r, "ownerID")
		if !ok {
			writeNotFound(w, EntityOwner)
			return
		}
		if err := d.svc.RequireOwner(r.Context(), ownerID); err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		p, err := decodePayload(r, false)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		patch, err := petPatchFrom(p)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		in := PetInput{
			BirthDate: patch.BirthDate.Value,
			TypeID:    patch.TypeID,
			OwnerID:   ownerID,
		}
		if patch.Name != nil {
			in.Name = *patch.Name
		}

		pet, err := d.svc.CreatePet(r.Context(), in)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		writeCreated(w, fmt.Sprintf("/api/pets/%d", pet.ID), SerializePet(pet, nil, DefaultPetOptions))
	}
}

// getOwnerPetHandler godoc
// @Summary Obtener pet de un owner
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID del pet"
// @Success 200 {object} PetPayload
// @Failure 404 {object} errorResponse "Owner not found / Pet not found"
// @Router /owners/{ownerID}/pets/{petID} [get]
func getOwnerPetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, ok := d.ownerPet(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, SerializePet(pet, nil, DefaultPetOptions))
	}
}

// updateOwnerPetHandler godoc
// @Summary Actualizar pet de un owner
// @Description Actualización parcial; responde 204 sin cuerpo.
// @Tags owners
// @Accept json
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID del pet"
// @Param payload body petRequest true "Campos a modificar"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Owner not found / Pet not found"
// @Router /owners/{ownerID}/pets/{petID} [put]
func updateOwnerPetHandler(d deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, ok := d.ownerPet(w, r)
		if !ok {
			return
		}

		p, err := decodePayload(r, true)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		patch, err := petPatchFrom(p)
		if err != nil {
			d.writeServiceError(w, r, err)
			return
		}

		if _, err := d.svc.UpdatePet(r.Context(), pet.ID, patch); err != nil {
			d.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ownerPet resuelve {ownerID}/pets/{petID}; si falla ya escribió la respuesta.
func (d deps) ownerPet(w http.ResponseWriter, r *http.Request) (Pet, bool) {
	ownerID, ok := pathID(r, "ownerID")
	if !ok {
		writeNotFound(w, EntityOwner)
		return Pet{}, false
	}
	if err := d.svc.RequireOwner(r.Context(), ownerID); err != nil {
		d.writeServiceError(w, r, err)
		return Pet{}, false
	}
	petID, ok := pathID(r, "petID")
	if !ok {
		writeNotFound(w, EntityPet)
		return Pet{}, false
	}

	pet, err := d.svc.GetOwnerPet(r.Context(), ownerID, petID)
	if err != nil {
		d.writeServiceError(w, r, err)
		return Pet{}, false
	}
	return pet, true
}

// petPatchFrom lee name, birthDate y type (ownerId lo agrega quien lo acepte).
func petPatchFrom(p payload) (PetPatch, error) {
	var (
		patch PetPatch
		err   error
	)
	if patch.Name, err = p.str("name"); err != nil {
		return patch, err
	}
	if patch.BirthDate, err = p.date("birthDate"); err != nil {
		return patch, err
	}
	if patch.TypeID, err = p.ref("type"); err != nil {
		return patch, err
	}
	return patch, nil
}
