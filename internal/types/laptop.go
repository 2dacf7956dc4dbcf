package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UsageType string

const (
	UsageGeneral     UsageType = "general"
	UsageGaming      UsageType = "gaming"
	UsageBusiness    UsageType = "business"
	UsageStudent     UsageType = "student"
	UsageCreative    UsageType = "creative"
	UsageProgramming UsageType = "programming"
)

// AllUsageTypes returns the enum in a fixed, display-friendly order.
func AllUsageTypes() []UsageType {
	return []UsageType{
		UsageGeneral,
		UsageGaming,
		UsageBusiness,
		UsageStudent,
		UsageCreative,
		UsageProgramming,
	}
}

func ParseUsageType(s string) (UsageType, bool) {
	switch UsageType(strings.ToLower(strings.TrimSpace(s))) {
	case UsageGeneral:
		return UsageGeneral, true
	case UsageGaming:
		return UsageGaming, true
	case UsageBusiness:
		return UsageBusiness, true
	case UsageStudent:
		return UsageStudent, true
	case UsageCreative:
		return UsageCreative, true
	case UsageProgramming:
		return UsageProgramming, true
	default:
		return "", false
	}
}

func (u UsageType) Description() string {
	switch u {
	case UsageGaming:
		return "High-performance laptops for playing modern games"
	case UsageBusiness:
		return "Professional laptops for office and business tasks"
	case UsageStudent:
		return "Affordable and portable laptops for students"
	case UsageCreative:
		return "Laptops for designers, video editors and creative professionals"
	case UsageProgramming:
		return "Laptops optimized for software development"
	default:
		return "Well-balanced laptops for everyday tasks"
	}
}

type Laptop struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Brand        string         `gorm:"column:brand;not null;index" json:"brand"`
	Model        string         `gorm:"column:model;not null" json:"model"`
	Price        float64        `gorm:"column:price;not null" json:"price"`
	Usage        UsageType      `gorm:"column:usage_type;not null;index" json:"usage_type"`
	Processor    string         `gorm:"column:processor;not null" json:"processor"`
	RAMGB        int            `gorm:"column:ram_gb;not null" json:"ram_gb"`
	StorageGB    int            `gorm:"column:storage_gb;not null" json:"storage_gb"`
	GPU          string         `gorm:"column:gpu" json:"gpu,omitempty"`
	ScreenInches float64        `gorm:"column:screen_inches" json:"screen_inches,omitempty"`
	BatteryHours float64        `gorm:"column:battery_hours" json:"battery_hours,omitempty"`
	WeightKG     float64        `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	OS           string         `gorm:"column:os" json:"os,omitempty"`
	Metadata     datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Laptop) TableName() string { return "laptop" }

// HasDedicatedGPU reports whether the laptop carries a discrete graphics chip.
// Integrated parts are stored with an "integrated" marker or left empty.
func (l Laptop) HasDedicatedGPU() bool {
	gpu := strings.ToLower(strings.TrimSpace(l.GPU))
	if gpu == "" || gpu == "none" {
		return false
	}
	return !strings.Contains(gpu, "integrated") &&
		!strings.Contains(gpu, "iris") &&
		!strings.Contains(gpu, "uhd")
}
