package models

type Product struct {
	BaseModel
	Name        string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:numeric(5,2);not null"`
	Stock       int     `gorm:"not null"`
	IsActive    bool    `gorm:"not null;default:true"`
	OnSale      bool    `gorm:"not null;default:false"`
}

// Tax - расчетное поле, в БД не хранится
func (p *Product) Tax() float64 {
	return p.Price * 0.3
}
