package models

// Product represents a product in the catalog.
// It references its category by id only; see EnrichedProduct for the
// resolved form.
type Product struct {
	ID         uint   `gorm:"primaryKey" json:"id" yaml:"id"`
	Name       string `gorm:"not null" json:"name" yaml:"name"`
	CategoryID uint   `gorm:"not null" json:"categoryId" yaml:"categoryId"`
}

func (p *Product) TableName() string {
	return "products"
}

// EnrichedProduct is a Product joined with its Category and the
// Category's owning User. It is derived once at load time and never
// stored.
type EnrichedProduct struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`
	User       User     `json:"user"`
}

// Dataset groups the three record sets delivered by a loader.
type Dataset struct {
	Users      []User     `json:"users" yaml:"users"`
	Categories []Category `json:"categories" yaml:"categories"`
	Products   []Product  `json:"products" yaml:"products"`
}
