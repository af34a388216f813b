package models

import (
	"math/rand"
	"strings"

	"gorm.io/gorm"
)

// Subject represents a course that reservations can be made for.
type Subject struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Code     string `gorm:"type:varchar(20)" json:"code"`
	Semester string `gorm:"type:varchar(20)" json:"semester"`
}

// BeforeCreate fills in a generated code when none was supplied:
// the first three letters of the name plus four random digits.
func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.Code != "" {
		return nil
	}
	prefix := "SUB"
	if s.Name != "" {
		runes := []rune(strings.ToUpper(s.Name))
		if len(runes) > 3 {
			runes = runes[:3]
		}
		prefix = string(runes)
	}
	digits := make([]byte, 4)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	s.Code = prefix + "-" + string(digits)
	return nil
}
