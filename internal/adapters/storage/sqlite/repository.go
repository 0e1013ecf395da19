package sqlite

import (
	"context"

	"petclinic/internal/domain/clinic"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ---- pet types ----

type PetTypeRepository struct {
	db *gorm.DB
}

func NewPetTypeRepository(db *gorm.DB) *PetTypeRepository {
	return &PetTypeRepository{db: db}
}

func (r *PetTypeRepository) List(ctx context.Context) ([]clinic.PetType, error) {
	rows := make([]PetTypeModel, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]clinic.PetType, 0, len(rows))
	for _, m := range rows {
		out = append(out, clinic.PetType{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *PetTypeRepository) GetByID(ctx context.Context, id int64) (clinic.PetType, error) {
	var m PetTypeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return clinic.PetType{}, translate(err)
	}
	return clinic.PetType{ID: m.ID, Name: m.Name}, nil
}

func (r *PetTypeRepository) Create(ctx context.Context, t clinic.PetType) (clinic.PetType, error) {
	m := PetTypeModel{Name: t.Name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return clinic.PetType{}, err
	}
	return clinic.PetType{ID: m.ID, Name: m.Name}, nil
}

func (r *PetTypeRepository) Update(ctx context.Context, t clinic.PetType) error {
	return mustAffect(r.db.WithContext(ctx).Model(&PetTypeModel{}).Where("id = ?", t.ID).Update("name", t.Name))
}

func (r *PetTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&PetModel{}).Where("type_id = ?", id).Update("type_id", nil).Error; err != nil {
			return err
		}
		return mustAffect(tx.Delete(&PetTypeModel{}, id))
	})
}

// ---- specialties ----

type SpecialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) *SpecialtyRepository {
	return &SpecialtyRepository{db: db}
}

func (r *SpecialtyRepository) List(ctx context.Context) ([]clinic.Specialty, error) {
	rows := make([]SpecialtyModel, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toSpecialties(rows), nil
}

func (r *SpecialtyRepository) GetByID(ctx context.Context, id int64) (clinic.Specialty, error) {
	var m SpecialtyModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return clinic.Specialty{}, translate(err)
	}
	return clinic.Specialty{ID: m.ID, Name: m.Name}, nil
}

func (r *SpecialtyRepository) GetByName(ctx context.Context, name string) (clinic.Specialty, error) {
	var m SpecialtyModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").First(&m).Error; err != nil {
		return clinic.Specialty{}, translate(err)
	}
	return clinic.Specialty{ID: m.ID, Name: m.Name}, nil
}

func (r *SpecialtyRepository) Create(ctx context.Context, s clinic.Specialty) (clinic.Specialty, error) {
	m := SpecialtyModel{Name: s.Name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return clinic.Specialty{}, err
	}
	return clinic.Specialty{ID: m.ID, Name: m.Name}, nil
}

func (r *SpecialtyRepository) Update(ctx context.Context, s clinic.Specialty) error {
	return mustAffect(r.db.WithContext(ctx).Model(&SpecialtyModel{}).Where("id = ?", s.ID).Update("name", s.Name))
}

func (r *SpecialtyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("specialty_id = ?", id).Delete(&VetSpecialtyModel{}).Error; err != nil {
			return err
		}
		return mustAffect(tx.Delete(&SpecialtyModel{}, id))
	})
}

func toSpecialties(rows []SpecialtyModel) []clinic.Specialty {
	out := make([]clinic.Specialty, 0, len(rows))
	for _, m := range rows {
		out = append(out, clinic.Specialty{ID: m.ID, Name: m.Name})
	}
	return out
}

// ---- owners ----

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) filtered(ctx context.Context, f clinic.OwnerFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&OwnerModel{})
	if f.LastNamePrefix != "" {
		// LIKE en SQLite ya es case-insensitive para ASCII
		q = q.Where(`last_name LIKE ? ESCAPE '\'`, likePrefix(f.LastNamePrefix))
	}
	return q
}

func (r *OwnerRepository) List(ctx context.Context, f clinic.OwnerFilter) ([]clinic.Owner, error) {
	q := r.filtered(ctx, f)
	if f.OrderByLastName {
		q = q.Order("last_name").Order("id")
	} else {
		q = q.Order("id")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	rows := make([]OwnerModel, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]clinic.Owner, 0, len(rows))
	for _, m := range rows {
		out = append(out, toOwner(m))
	}
	return out, nil
}

func (r *OwnerRepository) Count(ctx context.Context, f clinic.OwnerFilter) (int, error) {
	var n int64
	if err := r.filtered(ctx, f).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *OwnerRepository) GetByID(ctx context.Context, id int64) (clinic.Owner, error) {
	var m OwnerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return clinic.Owner{}, translate(err)
	}
	return toOwner(m), nil
}

func (r *OwnerRepository) Create(ctx context.Context, o clinic.Owner) (clinic.Owner, error) {
	m := OwnerModel{
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return clinic.Owner{}, err
	}
	return toOwner(m), nil
}

func (r *OwnerRepository) Update(ctx context.Context, o clinic.Owner) error {
	return mustAffect(r.db.WithContext(ctx).Model(&OwnerModel{}).Where("id = ?", o.ID).Updates(map[string]any{
		"first_name": o.FirstName,
		"last_name":  o.LastName,
		"address":    o.Address,
		"city":       o.City,
		"telephone":  o.Telephone,
	}))
}

func (r *OwnerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		petIDs := tx.Model(&PetModel{}).Select("id").Where("owner_id = ?", id)
		if err := tx.Where("pet_id IN (?)", petIDs).Delete(&VisitModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&PetModel{}).Error; err != nil {
			return err
		}
		return mustAffect(tx.Delete(&OwnerModel{}, id))
	})
}

func toOwner(m OwnerModel) clinic.Owner {
	return clinic.Owner{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Address:   m.Address,
		City:      m.City,
		Telephone: m.Telephone,
	}
}

// ---- pets ----

type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) List(ctx context.Context, f clinic.PetFilter) ([]clinic.Pet, error) {
	q := r.db.WithContext(ctx).Preload("Type")
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}

	rows := make([]PetModel, 0)
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]clinic.Pet, 0, len(rows))
	for _, m := range rows {
		out = append(out, toPet(m))
	}
	return out, nil
}

func (r *PetRepository) GetByID(ctx context.Context, id int64) (clinic.Pet, error) {
	var m PetModel
	if err := r.db.WithContext(ctx).Preload("Type").First(&m, id).Error; err != nil {
		return clinic.Pet{}, translate(err)
	}
	return toPet(m), nil
}

func (r *PetRepository) Create(ctx context.Context, p clinic.Pet) (clinic.Pet, error) {
	m := PetModel{
		Name:      p.Name,
		BirthDate: toDateText(p.BirthDate),
		TypeID:    p.TypeID,
		OwnerID:   p.OwnerID,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return clinic.Pet{}, err
	}
	p.ID = m.ID
	return p, nil
}

func (r *PetRepository) Update(ctx context.Context, p clinic.Pet) error {
	return mustAffect(r.db.WithContext(ctx).Model(&PetModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":       p.Name,
		"birth_date": toDateText(p.BirthDate),
		"type_id":    p.TypeID,
		"owner_id":   p.OwnerID,
	}))
}

func (r *PetRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", id).Delete(&VisitModel{}).Error; err != nil {
			return err
		}
		return mustAffect(tx.Delete(&PetModel{}, id))
	})
}

func toPet(m PetModel) clinic.Pet {
	p := clinic.Pet{
		ID:        m.ID,
		Name:      m.Name,
		BirthDate: fromDateText(m.BirthDate),
		TypeID:    m.TypeID,
		OwnerID:   m.OwnerID,
	}
	if m.Type != nil {
		p.Type = &clinic.PetType{ID: m.Type.ID, Name: m.Type.Name}
	}
	return p
}

// ---- visits ----

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) List(ctx context.Context, f clinic.VisitFilter) ([]clinic.Visit, error) {
	q := r.db.WithContext(ctx).Model(&VisitModel{})
	if f.PetID != 0 {
		q = q.Where("pet_id = ?", f.PetID)
	}

	rows := make([]VisitModel, 0)
	if err := q.Order("visit_date IS NULL").Order("visit_date").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]clinic.Visit, 0, len(rows))
	for _, m := range rows {
		out = append(out, toVisit(m))
	}
	return out, nil
}

func (r *VisitRepository) GetByID(ctx context.Context, id int64) (clinic.Visit, error) {
	var m VisitModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return clinic.Visit{}, translate(err)
	}
	return toVisit(m), nil
}

func (r *VisitRepository) Create(ctx context.Context, v clinic.Visit) (clinic.Visit, error) {
	m := VisitModel{
		PetID:       v.PetID,
		VisitDate:   toDateText(v.Date),
		Description: v.Description,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return clinic.Visit{}, err
	}
	return toVisit(m), nil
}

func (r *VisitRepository) Update(ctx context.Context, v clinic.Visit) error {
	return mustAffect(r.db.WithContext(ctx).Model(&VisitModel{}).Where("id = ?", v.ID).Updates(map[string]any{
		"pet_id":      v.PetID,
		"visit_date":  toDateText(v.Date),
		"description": v.Description,
	}))
}

func (r *VisitRepository) Delete(ctx context.Context, id int64) error {
	return mustAffect(r.db.WithContext(ctx).Delete(&VisitModel{}, id))
}

func toVisit(m VisitModel) clinic.Visit {
	return clinic.Visit{
		ID:          m.ID,
		PetID:       m.PetID,
		Date:        fromDateText(m.VisitDate),
		Description: m.Description,
	}
}

// ---- vets ----

type VetRepository struct {
	db *gorm.DB
}

func NewVetRepository(db *gorm.DB) *VetRepository {
	return &VetRepository{db: db}
}

type vetSpecialtyRow struct {
	VetID int64
	ID    int64
	Name  string
}

// specialtiesOf carga la join table para los vets dados (todos si ids es nil).
func (r *VetRepository) specialtiesOf(ctx context.Context, ids []int64) (map[int64][]clinic.Specialty, error) {
	q := r.db.WithContext(ctx).
		Table("vet_specialties AS vs").
		Select("vs.vet_id AS vet_id, s.id AS id, s.name AS name").
		Joins("JOIN specialties s ON s.id = vs.specialty_id")
	if ids != nil {
		q = q.Where("vs.vet_id IN ?", ids)
	}

	rows := make([]vetSpecialtyRow, 0)
	if err := q.Order("s.name").Order("s.id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := map[int64][]clinic.Specialty{}
	for _, row := range rows {
		out[row.VetID] = append(out[row.VetID], clinic.Specialty{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *VetRepository) List(ctx context.Context) ([]clinic.Vet, error) {
	rows := make([]VetModel, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	specs, err := r.specialtiesOf(ctx, nil)
	if err != nil {
		return nil, err
	}

	out := make([]clinic.Vet, 0, len(rows))
	for _, m := range rows {
		out = append(out, toVet(m, specs[m.ID]))
	}
	return out, nil
}

func (r *VetRepository) GetByID(ctx context.Context, id int64) (clinic.Vet, error) {
	var m VetModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return clinic.Vet{}, translate(err)
	}
	specs, err := r.specialtiesOf(ctx, []int64{id})
	if err != nil {
		return clinic.Vet{}, err
	}
	return toVet(m, specs[id]), nil
}

func (r *VetRepository) Create(ctx context.Context, v clinic.Vet) (clinic.Vet, error) {
	m := VetModel{FirstName: v.FirstName, LastName: v.LastName}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, sid := range v.SpecialtyIDs() {
			if err := addSpecialty(tx, m.ID, sid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return clinic.Vet{}, err
	}
	v.ID = m.ID
	return v, nil
}

func (r *VetRepository) Update(ctx context.Context, v clinic.Vet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&VetModel{}).Where("id = ?", v.ID).Updates(map[string]any{
			"first_name": v.FirstName,
			"last_name":  v.LastName,
		})
		if err := mustAffect(res); err != nil {
			return err
		}
		return replaceSpecialties(tx, v.ID, v.SpecialtyIDs())
	})
}

func (r *VetRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vet_id = ?", id).Delete(&VetSpecialtyModel{}).Error; err != nil {
			return err
		}
		return mustAffect(tx.Delete(&VetModel{}, id))
	})
}

func addSpecialty(tx *gorm.DB, vetID, specialtyID int64) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&VetSpecialtyModel{VetID: vetID, SpecialtyID: specialtyID}).Error
}

func replaceSpecialties(tx *gorm.DB, vetID int64, specialtyIDs []int64) error {
	if err := tx.Where("vet_id = ?", vetID).Delete(&VetSpecialtyModel{}).Error; err != nil {
		return err
	}
	for _, sid := range specialtyIDs {
		if err := addSpecialty(tx, vetID, sid); err != nil {
			return err
		}
	}
	return nil
}

func toVet(m VetModel, specs []clinic.Specialty) clinic.Vet {
	if specs == nil {
		specs = make([]clinic.Specialty, 0)
	}
	return clinic.Vet{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Specialties: specs,
	}
}
