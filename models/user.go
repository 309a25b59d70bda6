package models

// Sex is the recorded sex of a user. The view colours users by it.
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// Valid reports whether s is one of the known values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// User represents a user who owns one or more categories.
type User struct {
	ID   uint   `gorm:"primaryKey" json:"id" yaml:"id"`
	Name string `gorm:"not null" json:"name" yaml:"name"`
	Sex  Sex    `gorm:"type:char(1);not null" json:"sex" yaml:"sex"`
}

func (u *User) TableName() string {
	return "users"
}
