package models

// Category represents a product category.
// It includes a title, a display icon and the id of the owning user.
type Category struct {
	ID      uint   `gorm:"primaryKey" json:"id" yaml:"id"`
	Title   string `gorm:"not null" json:"title" yaml:"title"`
	Icon    string `gorm:"not null" json:"icon" yaml:"icon"`
	OwnerID uint   `gorm:"not null" json:"ownerId" yaml:"ownerId"`
}

func (c *Category) TableName() string {
	return "categories"
}
