package models

import (
	"time"
)

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email" gorm:"uniqueIndex"`
	Username         string    `json:"username" gorm:"uniqueIndex"`
	Password         string    `json:"-"` // Hash bcrypt, không trả ra ngoài
	PhoneNumber      string    `json:"phoneNumber"`
	Role             int       `json:"role" gorm:"default:0"`   // 0: user, 1: admin
	Status           int       `json:"status" gorm:"default:1"` // 1: active, 0: inactive
	RegistrationDate time.Time `json:"registrationDate" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) GetID() uint {
	return u.ID
}

func (u *User) SetID(id uint) {
	u.ID = id
}

func (u *User) GetName() string {
	return u.Username
}
