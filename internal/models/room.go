package models

import (
	"gorm.io/gorm"
)

// Room represents a schedulable physical space.
type Room struct {
	gorm.Model
	Name        string   `gorm:"uniqueIndex;not null" json:"name"`
	Code        string   `gorm:"uniqueIndex;not null" json:"code"`
	Type        RoomType `gorm:"type:varchar(30);not null;default:'classroom'" json:"type"`
	Building    string   `json:"building"`
	Floor       string   `json:"floor"`
	Capacity    int      `gorm:"not null" json:"capacity"` // upper bound for reservation attendees
	Description string   `gorm:"type:text" json:"description"`

	// Equipment flags
	HasProjector       bool `gorm:"default:false" json:"has_projector"`
	HasComputers       bool `gorm:"default:false" json:"has_computers"`
	HasAirConditioning bool `gorm:"default:false" json:"has_air_conditioning"`
	HasSmartTV         bool `gorm:"default:false" json:"has_smart_tv"`
	HasAudio           bool `gorm:"default:false" json:"has_audio"`
	HasWifi            bool `gorm:"default:false" json:"has_wifi"`

	Status   RoomStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	ImageURL string     `json:"image_url"`
}

// RoomType defines the fixed room type enumeration.
type RoomType string

const (
	RoomTypeClassroom  RoomType = "classroom"
	RoomTypeLaboratory RoomType = "laboratory"
	RoomTypeAuditorium RoomType = "auditorium"
	RoomTypeConference RoomType = "conference_room"
)

// RoomStatus defines the room lifecycle status type.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)
