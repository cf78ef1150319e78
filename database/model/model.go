// Package model defines the GORM models persisted by the jokes application.
package model

import "time"

// User is an account that can log in and submit jokes. Users are created by
// registration and never mutated afterwards.
type User struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Joke is a user-submitted joke. JokesterId is nullable so rows can outlive
// an owning account.
type Joke struct {
	Id         string    `json:"id" gorm:"primaryKey;size:36"`
	Name       string    `json:"name" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	JokesterId *int      `json:"jokesterId" gorm:"index"`
	Jokester   *User     `json:"-" gorm:"foreignKey:JokesterId"`
	CreatedAt  time.Time `json:"createdAt"`
}
