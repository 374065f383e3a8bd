package models

import (
	"time"

	"github.com/zulandar/hwrel/internal/milhdbk217f"
)

// Hardware is one item in the Bill of Materials: an assembly or a
// component/piece part. Design and reliability records hang off it 1:1.
type Hardware struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	RevisionID    uint   `gorm:"default:1;index"`
	ParentID      *uint  `gorm:"index"`
	Part          bool   `gorm:"default:false"`
	Name          string `gorm:"size:128;not null"`
	Description   string `gorm:"type:text"`
	PartNumber    string `gorm:"size:64"`
	RefDes        string `gorm:"size:64"`
	CompRefDes    string `gorm:"size:512"`
	CategoryID    int    `gorm:"index"`
	SubcategoryID int
	Quantity      int     `gorm:"default:1"`
	DutyCycle     float64 `gorm:"default:100"`
	MissionTime   float64 `gorm:"default:100"`
	MultAdjFactor float64 `gorm:"default:1"`
	AddAdjFactor  float64
	CostTypeID    int `gorm:"default:2"`
	Cost          float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Parent      *Hardware         `gorm:"foreignKey:ParentID"`
	Children    []Hardware        `gorm:"foreignKey:ParentID"`
	Electrical  *ElectricalDesign `gorm:"foreignKey:HardwareID"`
	Mechanical  *MechanicalDesign `gorm:"foreignKey:HardwareID"`
	MilHdbkF    *MilHdbkF         `gorm:"foreignKey:HardwareID"`
	NSWC        *NSWC             `gorm:"foreignKey:HardwareID"`
	Reliability *Reliability      `gorm:"foreignKey:HardwareID"`
}

// ApplyTo copies the identity, classification and scaling fields.
func (h *Hardware) ApplyTo(a *milhdbk217f.Attributes) {
	if h == nil {
		return
	}
	a.HardwareID = int(h.ID)
	a.RevisionID = int(h.RevisionID)
	a.CategoryID = h.CategoryID
	a.SubcategoryID = h.SubcategoryID
	a.Quantity = h.Quantity
	a.DutyCycle = h.DutyCycle
	a.MultAdjFactor = h.MultAdjFactor
	a.AddAdjFactor = h.AddAdjFactor
}
