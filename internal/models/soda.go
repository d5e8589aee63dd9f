package models

// Soda represents a stored soda record in the stock.
type Soda struct {
	ID       int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string   `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Max      int      `json:"max" gorm:"not null"`
	Quantity int      `json:"quantity" gorm:"not null"`
	Size     SodaSize `json:"size" gorm:"size:16;not null"`
}

// TableName pins the table shared with the goose migrations.
func (Soda) TableName() string {
	return "sodas"
}

// SodaDTO is the externally visible soda representation. ID is nil until the
// record has been stored.
type SodaDTO struct {
	ID       *int64   `json:"id"`
	Name     string   `json:"name" validate:"required,min=1,max=200"`
	Max      *int     `json:"max" validate:"required,min=0,max=500"`
	Quantity *int     `json:"quantity" validate:"required,min=0,max=100"`
	Size     SodaSize `json:"size" validate:"required,soda_size"`
}
