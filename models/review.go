package models

import (
	"fmt"
	"time"
)

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Rating     int       `json:"rating"`  // Số sao từ 1 đến 5
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate" gorm:"autoCreateTime"`
	UserID     uint      `json:"userId"`
	VehicleID  uint      `json:"vehicleId" gorm:"index"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Review) GetID() uint {
	return r.ID
}

func (r *Review) SetID(id uint) {
	r.ID = id
}

func (r *Review) ValidateRating() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("invalid rating: %d, must be between 1 and 5", r.Rating)
	}
	return nil
}
