// Package settingsrepo persists the SystemSettings singleton row.
package settingsrepo

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/settings"
)

// SettingsDTO is the system_settings row. There is exactly one, with id 1.
type SettingsDTO struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement:false"`
	OpenTime         string     `gorm:"size:5;not null"`
	LastOrderTime    string     `gorm:"size:5;not null"`
	Closure          ClosureDTO `gorm:"embedded;embeddedPrefix:closure_"`
	MaxCartItems     int        `gorm:"not null"`
	MaxOrdersPerHour int        `gorm:"not null"`
	MaxActiveOrders  int        `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null;autoUpdateTime:false"`
	UpdatedBy        *uint64
}

func (SettingsDTO) TableName() string {
	return "system_settings"
}

// ClosureDTO is the embedded emergency closure.
type ClosureDTO struct {
	Active      bool   `gorm:"not null;default:false"`
	Reason      string `gorm:"size:255"`
	Message     string `gorm:"size:1024"`
	Until       *time.Time
	ActivatedBy *uint64
	ActivatedAt *time.Time
}

func fromDomain(s *settings.SystemSettings) SettingsDTO {
	hours := s.OperatingHours()
	closure := s.Closure()
	limits := s.Limits()
	return SettingsDTO{
		ID:            settings.SingletonID,
		OpenTime:      hours.Open().String(),
		LastOrderTime: hours.LastOrder().String(),
		Closure: ClosureDTO{
			Active:      closure.Active,
			Reason:      closure.Reason,
			Message:     closure.Message,
			Until:       closure.Until,
			ActivatedBy: closure.ActivatedBy,
			ActivatedAt: closure.ActivatedAt,
		},
		MaxCartItems:     limits.MaxCartItems,
		MaxOrdersPerHour: limits.MaxOrdersPerHour,
		MaxActiveOrders:  limits.MaxActiveOrders,
		UpdatedAt:        s.UpdatedAt(),
		UpdatedBy:        s.UpdatedBy(),
	}
}

func toDomain(dto SettingsDTO) (*settings.SystemSettings, error) {
	open, err := settings.ParseClockTime(dto.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("stored open time: %w", err)
	}
	last, err := settings.ParseClockTime(dto.LastOrderTime)
	if err != nil {
		return nil, fmt.Errorf("stored last order time: %w", err)
	}
	hours, err := settings.NewOperatingHours(open, last)
	if err != nil {
		return nil, err
	}

	return settings.Restore(hours, settings.EmergencyClosure{
		Active:      dto.Closure.Active,
		Reason:      dto.Closure.Reason,
		Message:     dto.Closure.Message,
		Until:       dto.Closure.Until,
		ActivatedBy: dto.Closure.ActivatedBy,
		ActivatedAt: dto.Closure.ActivatedAt,
	}, settings.Limits{
		MaxCartItems:     dto.MaxCartItems,
		MaxOrdersPerHour: dto.MaxOrdersPerHour,
		MaxActiveOrders:  dto.MaxActiveOrders,
	}, dto.UpdatedAt, dto.UpdatedBy), nil
}
