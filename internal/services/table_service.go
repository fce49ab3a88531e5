package services

import (
	"errors"
	"fmt"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrTableNotFound        = errors.New("table not found")
	ErrDuplicateTableNumber = errors.New("this table number already exists")
	ErrInvalidTableStatus   = errors.New("invalid table status")
)

// Floor grid dimensions used by the placement helpers.
const (
	GridWidth  = 8
	GridHeight = 6
)

type CreateTableInput struct {
	TableNumber int
	Capacity    int
	Shape       string
	PositionX   int
	PositionY   int
	Width       int
	Height      int
}

type UpdateTableInput struct {
	Capacity  *int
	Shape     *string
	PositionX *int
	PositionY *int
	Width     *int
	Height    *int
}

// LayoutSuggestion is an advisory default for the creation UI. Two
// concurrent creations may race for the same slot; only the
// table-number uniqueness check is authoritative.
type LayoutSuggestion struct {
	TableNumber int  `json:"table_number"`
	PositionX   int  `json:"position_x"`
	PositionY   int  `json:"position_y"`
	HasPosition bool `json:"has_position"`
}

type TableService interface {
	CreateTable(input *CreateTableInput) (*models.Table, error)
	GetTables() ([]models.Table, error)
	UpdateTable(id uint, input *UpdateTableInput) (*models.Table, error)
	UpdateTableStatus(id uint, status, customerName string) (*models.Table, error)
	DeleteTable(id uint) error
	SuggestPlacement() (*LayoutSuggestion, error)
}

type tableService struct {
	tableRepo repository.TableRepository
}

func NewTableService(tableRepo repository.TableRepository) TableService {
	return &tableService{tableRepo: tableRepo}
}

// CreateTable rejects a number already used by any table, active or
// soft-deleted. The pre-check gives a friendly error; if a concurrent
// create slips past it, the unique index reports the same conflict.
func (s *tableService) CreateTable(input *CreateTableInput) (*models.Table, error) {
	if err := validateCreateTable(input); err != nil {
		return nil, err
	}

	exists, err := s.tableRepo.ExistsByNumber(input.TableNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTableNumber
	}

	table := &models.Table{
		TableNumber: input.TableNumber,
		Capacity:    input.Capacity,
		Shape:       input.Shape,
		Status:      string(models.TableAvailable),
		PositionX:   input.PositionX,
		PositionY:   input.PositionY,
		Width:       input.Width,
		Height:      input.Height,
		IsActive:    true,
	}
	if err := s.tableRepo.Create(table); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTableNumber
		}
		return nil, err
	}
	return table, nil
}

func validateCreateTable(input *CreateTableInput) error {
	if input.TableNumber < 1 {
		return fmt.Errorf("%w: table_number must be at least 1", ErrValidation)
	}
	if input.Capacity < 1 || input.Capacity > 20 {
		return fmt.Errorf("%w: capacity must be between 1 and 20", ErrValidation)
	}
	if input.Shape == "" {
		input.Shape = string(models.ShapeSquare)
	}
	if !models.ValidTableShape(input.Shape) {
		return fmt.Errorf("%w: shape must be square, round or rectangular", ErrValidation)
	}
	if input.PositionX < 0 || input.PositionY < 0 {
		return fmt.Errorf("%w: position must not be negative", ErrValidation)
	}
	if input.Width == 0 {
		input.Width = 1
	}
	if input.Height == 0 {
		input.Height = 1
	}
	if input.Width < 1 || input.Height < 1 {
		return fmt.Errorf("%w: width and height must be at least 1", ErrValidation)
	}
	return nil
}

func (s *tableService) GetTables() ([]models.Table, error) {
	return s.tableRepo.GetActive()
}

func (s *tableService) getActiveByID(id uint) (*models.Table, error) {
	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	if !table.IsActive {
		return nil, ErrTableNotFound
	}
	return table, nil
}

// UpdateTable edits placement and capacity. The table number is
// immutable after creation.
func (s *tableService) UpdateTable(id uint, input *UpdateTableInput) (*models.Table, error) {
	table, err := s.getActiveByID(id)
	if err != nil {
		return nil, err
	}

	if input.Capacity != nil {
		if *input.Capacity < 1 || *input.Capacity > 20 {
			return nil, fmt.Errorf("%w: capacity must be between 1 and 20", ErrValidation)
		}
		table.Capacity = *input.Capacity
	}
	if input.Shape != nil {
		if !models.ValidTableShape(*input.Shape) {
			return nil, fmt.Errorf("%w: shape must be square, round or rectangular", ErrValidation)
		}
		table.Shape = *input.Shape
	}
	if input.PositionX != nil {
		if *input.PositionX < 0 {
			return nil, fmt.Errorf("%w: position must not be negative", ErrValidation)
		}
		table.PositionX = *input.PositionX
	}
	if input.PositionY != nil {
		if *input.PositionY < 0 {
			return nil, fmt.Errorf("%w: position must not be negative", ErrValidation)
		}
		table.PositionY = *input.PositionY
	}
	if input.Width != nil {
		if *input.Width < 1 {
			return nil, fmt.Errorf("%w: width must be at least 1", ErrValidation)
		}
		table.Width = *input.Width
	}
	if input.Height != nil {
		if *input.Height < 1 {
			return nil, fmt.Errorf("%w: height must be at least 1", ErrValidation)
		}
		table.Height = *input.Height
	}

	if err := s.tableRepo.Update(table); err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateTableStatus toggles occupancy. Any status may follow any other;
// this is a live toggle, not a lifecycle.
func (s *tableService) UpdateTableStatus(id uint, status, customerName string) (*models.Table, error) {
	if !models.ValidTableStatus(status) {
		return nil, ErrInvalidTableStatus
	}

	table, err := s.getActiveByID(id)
	if err != nil {
		return nil, err
	}

	table.Status = status
	if status == string(models.TableOccupied) {
		table.CustomerName = customerName
	} else {
		table.CustomerName = ""
	}

	if err := s.tableRepo.Update(table); err != nil {
		return nil, err
	}
	return table, nil
}

// DeleteTable soft-deletes: the row stays and its number remains
// reserved forever.
func (s *tableService) DeleteTable(id uint) error {
	table, err := s.getActiveByID(id)
	if err != nil {
		return err
	}

	table.IsActive = false
	table.Status = string(models.TableAvailable)
	table.CustomerName = ""
	return s.tableRepo.Update(table)
}

// SuggestPlacement scans the floor grid row-major for the first cell no
// active table covers, and ascending integers for the first number no
// table has ever used.
func (s *tableService) SuggestPlacement() (*LayoutSuggestion, error) {
	tables, err := s.tableRepo.GetAll()
	if err != nil {
		return nil, err
	}

	suggestion := &LayoutSuggestion{
		TableNumber: nextFreeTableNumber(tables),
	}
	x, y, ok := firstFreeGridPosition(tables)
	suggestion.PositionX = x
	suggestion.PositionY = y
	suggestion.HasPosition = ok
	return suggestion, nil
}

func nextFreeTableNumber(tables []models.Table) int {
	used := make(map[int]bool, len(tables))
	for _, t := range tables {
		used[t.TableNumber] = true
	}
	n := 1
	for used[n] {
		n++
	}
	return n
}

func firstFreeGridPosition(tables []models.Table) (int, int, bool) {
	var occupied [GridHeight][GridWidth]bool
	for _, t := range tables {
		if !t.IsActive {
			continue
		}
		for y := t.PositionY; y < t.PositionY+t.Height && y < GridHeight; y++ {
			for x := t.PositionX; x < t.PositionX+t.Width && x < GridWidth; x++ {
				if x >= 0 && y >= 0 {
					occupied[y][x] = true
				}
			}
		}
	}
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			if !occupied[y][x] {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
