// Package hardware provides BoM lifecycle operations on the database.
package hardware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zulandar/hwrel/internal/bom"
	"github.com/zulandar/hwrel/internal/models"
	"gorm.io/gorm"
)

var validate = validator.New()

// ErrNotFound is returned, wrapped with the id, when a hardware item does
// not exist.
var ErrNotFound = errors.New("hardware: not found")

// CreateOpts holds parameters for creating a hardware item. Design records
// left nil are created empty.
type CreateOpts struct {
	ParentID      uint
	Part          bool
	Name          string `validate:"required,max=128"`
	Description   string
	PartNumber    string  `validate:"max=64"`
	RefDes        string  `validate:"max=64"`
	CategoryID    int     `validate:"gte=0,lte=10"`
	SubcategoryID int     `validate:"gte=0"`
	Quantity      int     `validate:"gte=0"`
	DutyCycle     float64 `validate:"gte=0,lte=100"`
	MissionTime   float64 `validate:"gte=0"`
	CostTypeID    int     `validate:"omitempty,oneof=1 2"`
	Cost          float64 `validate:"gte=0"`

	Electrical  *models.ElectricalDesign
	Mechanical  *models.MechanicalDesign
	Reliability *models.Reliability
}

// ListFilters holds optional filters for listing hardware.
type ListFilters struct {
	ParentID   *uint
	RootsOnly  bool
	PartsOnly  bool
	CategoryID int
}

// designTables maps an update key prefix to the record it addresses.
var designTables = map[string]interface{}{
	"electrical":  &models.ElectricalDesign{},
	"mechanical":  &models.MechanicalDesign{},
	"nswc":        &models.NSWC{},
	"reliability": &models.Reliability{},
}

// Create inserts a hardware item and its empty design records in one
// transaction. A component/piece part can not be a parent.
func Create(db *gorm.DB, opts CreateOpts) (*models.Hardware, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("hardware: invalid create options: %w", err)
	}

	compRefDes := opts.RefDes
	if opts.ParentID != 0 {
		var parent models.Hardware
		if err := db.Where("id = ?", opts.ParentID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("hardware: parent not found: %d", opts.ParentID)
			}
			return nil, fmt.Errorf("hardware: check parent %d: %w", opts.ParentID, err)
		}
		if parent.Part {
			return nil, &bom.InsertError{Parent: int(parent.ID), ChildIsPart: opts.Part}
		}
		if parent.CompRefDes != "" {
			compRefDes = parent.CompRefDes + ":" + opts.RefDes
		}
	}

	if opts.Quantity == 0 {
		opts.Quantity = 1
	}
	if opts.DutyCycle == 0 {
		opts.DutyCycle = 100.0
	}
	if opts.CostTypeID == 0 {
		opts.CostTypeID = bom.CostCalculated
	}

	hw := models.Hardware{
		RevisionID:    1,
		Part:          opts.Part,
		Name:          opts.Name,
		Description:   opts.Description,
		PartNumber:    opts.PartNumber,
		RefDes:        opts.RefDes,
		CompRefDes:    compRefDes,
		CategoryID:    opts.CategoryID,
		SubcategoryID: opts.SubcategoryID,
		Quantity:      opts.Quantity,
		DutyCycle:     opts.DutyCycle,
		MissionTime:   opts.MissionTime,
		MultAdjFactor: 1.0,
		CostTypeID:    opts.CostTypeID,
		Cost:          opts.Cost,
	}
	if opts.ParentID != 0 {
		hw.ParentID = &opts.ParentID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hw).Error; err != nil {
			return fmt.Errorf("hardware: create: %w", err)
		}

		el := opts.Electrical
		if el == nil {
			el = &models.ElectricalDesign{}
		}
		mech := opts.Mechanical
		if mech == nil {
			mech = &models.MechanicalDesign{}
		}
		rel := opts.Reliability
		if rel == nil {
			rel = &models.Reliability{}
		}
		el.HardwareID, mech.HardwareID, rel.HardwareID = hw.ID, hw.ID, hw.ID

		for _, rec := range []interface{}{el, mech, &models.MilHdbkF{HardwareID: hw.ID}, &models.NSWC{HardwareID: hw.ID}, rel} {
			if err := tx.Create(rec).Error; err != nil {
				return fmt.Errorf("hardware: create %T for %d: %w", rec, hw.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &hw, nil
}

// Get retrieves a hardware item by ID, preloading its design records.
func Get(db *gorm.DB, id uint) (*models.Hardware, error) {
	var hw models.Hardware
	if err := preloadDesign(db).Where("id = ?", id).First(&hw).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("hardware: get %d: %w", id, err)
	}
	return &hw, nil
}

func preloadDesign(db *gorm.DB) *gorm.DB {
	return db.Preload("Electrical").
		Preload("Mechanical").
		Preload("MilHdbkF").
		Preload("NSWC").
		Preload("Reliability")
}

// List returns hardware matching the given filters, ordered by ID.
func List(db *gorm.DB, filters ListFilters) ([]models.Hardware, error) {
	q := db.Model(&models.Hardware{})

	if filters.ParentID != nil {
		q = q.Where("parent_id = ?", *filters.ParentID)
	}
	if filters.RootsOnly {
		q = q.Where("parent_id IS NULL")
	}
	if filters.PartsOnly {
		q = q.Where("part = ?", true)
	}
	if filters.CategoryID != 0 {
		q = q.Where("category_id = ?", filters.CategoryID)
	}

	var items []models.Hardware
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("hardware: list: %w", err)
	}
	return items, nil
}

// Update modifies fields of an item. Keys prefixed with "electrical.",
// "mechanical.", "nswc." or "reliability." address the matching design
// record; other keys address the hardware row. The parent can only be
// changed with Move. Changing ref_des refreshes the composite designators
// of the item and its subtree.
func Update(db *gorm.DB, id uint, updates map[string]interface{}) error {
	var hw models.Hardware
	if err := db.Where("id = ?", id).First(&hw).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return fmt.Errorf("hardware: get %d for update: %w", id, err)
	}

	own := map[string]interface{}{}
	design := map[string]map[string]interface{}{}
	for k, v := range updates {
		table, col, ok := strings.Cut(k, ".")
		if !ok {
			own[k] = v
			continue
		}
		if _, known := designTables[table]; !known {
			return fmt.Errorf("hardware: unknown design record %q in key %q", table, k)
		}
		if design[table] == nil {
			design[table] = map[string]interface{}{}
		}
		design[table][col] = v
	}

	for _, k := range []string{"id", "parent_id", "hardware_id"} {
		if _, ok := own[k]; ok {
			return fmt.Errorf("hardware: %s can not be updated", k)
		}
	}
	if part, ok := own["part"]; ok && isTrue(part) && !hw.Part {
		var count int64
		if err := db.Model(&models.Hardware{}).Where("parent_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("hardware: count children of %d: %w", id, err)
		}
		if count > 0 {
			return fmt.Errorf("hardware: %d has %d children and can not become a part", id, count)
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(own) > 0 {
			if err := tx.Model(&models.Hardware{}).Where("id = ?", id).Updates(own).Error; err != nil {
				return fmt.Errorf("hardware: update %d: %w", id, err)
			}
			if _, ok := own["ref_des"]; ok {
				if err := RefreshRefDes(tx, id); err != nil {
					return err
				}
			}
		}
		for table, cols := range design {
			if err := tx.Model(designTables[table]).Where("hardware_id = ?", id).Updates(cols).Error; err != nil {
				return fmt.Errorf("hardware: update %s of %d: %w", table, id, err)
			}
		}
		return nil
	})
}

func isTrue(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "1"
	case int:
		return b != 0
	}
	return false
}

// GetChildren returns the direct children of an item, ordered by ID.
func GetChildren(db *gorm.DB, parentID uint) ([]models.Hardware, error) {
	var count int64
	if err := db.Model(&models.Hardware{}).Where("id = ?", parentID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("hardware: check parent %d: %w", parentID, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("hardware: parent not found: %d", parentID)
	}

	var children []models.Hardware
	if err := db.Where("parent_id = ?", parentID).Order("id ASC").Find(&children).Error; err != nil {
		return nil, fmt.Errorf("hardware: get children of %d: %w", parentID, err)
	}
	return children, nil
}

// Delete removes an item, its whole subtree and every design record
// attached to them. It returns the number of hardware rows removed.
func Delete(db *gorm.DB, id uint) (int, error) {
	ids, err := subtreeIDs(db, id)
	if err != nil {
		return 0, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range []interface{}{
			&models.ElectricalDesign{}, &models.MechanicalDesign{}, &models.MilHdbkF{},
			&models.NSWC{}, &models.Reliability{},
		} {
			if err := tx.Where("hardware_id IN ?", ids).Delete(rec).Error; err != nil {
				return fmt.Errorf("hardware: delete %T under %d: %w", rec, id, err)
			}
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.Hardware{}).Error; err != nil {
			return fmt.Errorf("hardware: delete %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// subtreeIDs returns id followed by every descendant, breadth first.
func subtreeIDs(db *gorm.DB, id uint) ([]uint, error) {
	var count int64
	if err := db.Model(&models.Hardware{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("hardware: check %d: %w", id, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	ids := []uint{id}
	frontier := []uint{id}
	for len(frontier) > 0 {
		var next []uint
		if err := db.Model(&models.Hardware{}).Where("parent_id IN ?", frontier).Order("id ASC").Pluck("id", &next).Error; err != nil {
			return nil, fmt.Errorf("hardware: walk subtree of %d: %w", id, err)
		}
		ids = append(ids, next...)
		frontier = next
	}
	return ids, nil
}

// Move re-parents an item. A newParentID of 0 makes it a root. Moving an
// item under itself or one of its descendants is refused, as is moving it
// under a component/piece part. Composite reference designators under the
// moved item are refreshed.
func Move(db *gorm.DB, id, newParentID uint) error {
	hw, err := Get(db, id)
	if err != nil {
		return err
	}

	if newParentID != 0 {
		var parent models.Hardware
		if err := db.Where("id = ?", newParentID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("hardware: parent not found: %d", newParentID)
			}
			return fmt.Errorf("hardware: check parent %d: %w", newParentID, err)
		}
		if parent.Part {
			return &bom.InsertError{Parent: int(parent.ID), ChildIsPart: hw.Part}
		}
		cycle, err := isAncestor(db, id, newParentID)
		if err != nil {
			return err
		}
		if cycle {
			return fmt.Errorf("hardware: moving %d under %d would create a cycle", id, newParentID)
		}
	}

	var parent interface{}
	if newParentID != 0 {
		parent = newParentID
	}
	if err := db.Model(&models.Hardware{}).Where("id = ?", id).Update("parent_id", parent).Error; err != nil {
		return fmt.Errorf("hardware: move %d: %w", id, err)
	}
	return RefreshRefDes(db, id)
}

// isAncestor reports whether ancestor is id itself or lies on the parent
// chain above id.
func isAncestor(db *gorm.DB, ancestor, id uint) (bool, error) {
	seen := map[uint]bool{}
	cur := &id
	for cur != nil {
		if *cur == ancestor {
			return true, nil
		}
		if seen[*cur] {
			return false, fmt.Errorf("hardware: parent chain of %d loops at %d", id, *cur)
		}
		seen[*cur] = true

		var hw models.Hardware
		if err := db.Select("id", "parent_id").Where("id = ?", *cur).First(&hw).Error; err != nil {
			return false, fmt.Errorf("hardware: walk parents of %d: %w", id, err)
		}
		cur = hw.ParentID
	}
	return false, nil
}
