package model

import "time"

// Valid appointment statuses. New bookings always start as Pending.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type AppointmentModel struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"column:name;type:text;not null" json:"name"`
	Email          string    `gorm:"column:email;type:text;not null" json:"email"`
	Phone          string    `gorm:"column:phone;type:text;not null" json:"phone"`
	Service        string    `gorm:"column:service;type:text;not null" json:"service"` // free text, not a FK
	Date           string    `gorm:"column:date;type:text;not null" json:"date"`
	Time           string    `gorm:"column:time;type:text;not null" json:"time"`
	SpecialRequest string    `gorm:"column:special_request;type:text" json:"special_request"`
	Status         string    `gorm:"column:status;type:text;not null;default:'Pending'" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName sets the name of the table
func (AppointmentModel) TableName() string {
	return "appointments"
}
