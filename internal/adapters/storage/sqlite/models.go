package sqlite

type PetTypeModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (PetTypeModel) TableName() string { return "types" }

type SpecialtyModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (SpecialtyModel) TableName() string { return "specialties" }

type OwnerModel struct {
	ID        int64  `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null;index"`
	Address   string `gorm:"not null"`
	City      string `gorm:"not null"`
	Telephone string `gorm:"not null"`
}

func (OwnerModel) TableName() string { return "owners" }

type PetModel struct {
	ID        int64   `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	BirthDate *string `gorm:"column:birth_date"`
	TypeID    *int64
	OwnerID   int64 `gorm:"not null;index"`

	Type *PetTypeModel `gorm:"foreignKey:TypeID"`
}

func (PetModel) TableName() string { return "pets" }

type VisitModel struct {
	ID          int64   `gorm:"primaryKey"`
	PetID       int64   `gorm:"not null;index"`
	VisitDate   *string `gorm:"column:visit_date"`
	Description string  `gorm:"not null"`
}

func (VisitModel) TableName() string { return "visits" }

type VetModel struct {
	ID        int64  `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
}

func (VetModel) TableName() string { return "vets" }

// VetSpecialtyModel es la join table; se maneja a mano (add-one / replace-all).
type VetSpecialtyModel struct {
	VetID       int64 `gorm:"primaryKey"`
	SpecialtyID int64 `gorm:"primaryKey"`
}

func (VetSpecialtyModel) TableName() string { return "vet_specialties" }
