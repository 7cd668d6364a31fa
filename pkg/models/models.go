package models

import "time"

// Base is embedded by every per-user resource row.
type Base struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Date   time.Time `gorm:"index;not null" json:"date"`
	UserID uint      `gorm:"index;not null" json:"user"`
}

func (b Base) Meta() Base {
	return b
}

type Temperature struct {
	Base
	Value float64 `gorm:"not null" json:"value"`
}

type Switch struct {
	Base
	Value bool `gorm:"not null" json:"value"`
}

type Light struct {
	Base
	Value int `gorm:"not null" json:"value"`
}

// Record is the set of resource families served by the generic store.
type Record interface {
	Temperature | Switch | Light
	Meta() Base
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Name     string `gorm:"size:255" json:"name"`
	Password string `gorm:"not null" json:"-"`

	Temperatures []Temperature `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Switches     []Switch      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Lights       []Light       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sessions     []Session     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Session rows never hold the raw token, only its SHA-256 hex digest.
type Session struct {
	ID        uint      `gorm:"primaryKey"`
	TokenHash string    `gorm:"uniqueIndex;size:64;not null"`
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

func AllModels() []any {
	return []any{&User{}, &Temperature{}, &Switch{}, &Light{}, &Session{}}
}
