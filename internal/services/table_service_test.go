package services

import (
	"errors"
	"testing"

	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

// stubTableRepo implements repository.TableRepository in memory with a
// unique-index emulation on table_number.
type stubTableRepo struct {
	tables map[uint]models.Table
	nextID uint
	// precheckBlind makes ExistsByNumber miss, emulating the loser of
	// a check-then-act race whose insert hits the unique index.
	precheckBlind bool
}

func newStubTableRepo() *stubTableRepo {
	return &stubTableRepo{tables: make(map[uint]models.Table), nextID: 1}
}

func (s *stubTableRepo) Create(table *models.Table) error {
	for _, t := range s.tables {
		if t.TableNumber == table.TableNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	table.ID = s.nextID
	s.nextID++
	s.tables[table.ID] = *table
	return nil
}

func (s *stubTableRepo) GetByID(id uint) (*models.Table, error) {
	table, ok := s.tables[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := table
	return &cp, nil
}

func (s *stubTableRepo) GetActive() ([]models.Table, error) {
	var out []models.Table
	for _, t := range s.tables {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTableRepo) GetAll() ([]models.Table, error) {
	var out []models.Table
	for _, t := range s.tables {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubTableRepo) ExistsByNumber(tableNumber int) (bool, error) {
	if s.precheckBlind {
		return false, nil
	}
	for _, t := range s.tables {
		if t.TableNumber == tableNumber {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubTableRepo) Update(table *models.Table) error {
	if _, ok := s.tables[table.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.tables[table.ID] = *table
	return nil
}

func tableInput(number int) *CreateTableInput {
	return &CreateTableInput{TableNumber: number, Capacity: 4}
}

func TestCreateTableDefaults(t *testing.T) {
	svc := NewTableService(newStubTableRepo())

	table, err := svc.CreateTable(tableInput(1))
	if err != nil {
		t.Fatal(err)
	}
	if table.Shape != string(models.ShapeSquare) {
		t.Errorf("shape = %q, want square default", table.Shape)
	}
	if table.Width != 1 || table.Height != 1 {
		t.Errorf("span = %dx%d, want 1x1 default", table.Width, table.Height)
	}
	if table.Status != string(models.TableAvailable) {
		t.Errorf("status = %q, want available", table.Status)
	}
	if !table.IsActive {
		t.Error("new table must be active")
	}
}

func TestCreateTableValidation(t *testing.T) {
	svc := NewTableService(newStubTableRepo())

	cases := []struct {
		name  string
		input *CreateTableInput
	}{
		{"zero number", &CreateTableInput{TableNumber: 0, Capacity: 4}},
		{"zero capacity", &CreateTableInput{TableNumber: 1, Capacity: 0}},
		{"capacity over 20", &CreateTableInput{TableNumber: 1, Capacity: 21}},
		{"unknown shape", &CreateTableInput{TableNumber: 1, Capacity: 4, Shape: "oval"}},
		{"negative position", &CreateTableInput{TableNumber: 1, Capacity: 4, PositionX: -1}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateTable(tc.input); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: got %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestDuplicateTableNumberIncludesSoftDeleted(t *testing.T) {
	svc := NewTableService(newStubTableRepo())

	created, err := svc.CreateTable(tableInput(3))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.CreateTable(tableInput(3)); !errors.Is(err, ErrDuplicateTableNumber) {
		t.Fatalf("got %v, want ErrDuplicateTableNumber", err)
	}

	if err := svc.DeleteTable(created.ID); err != nil {
		t.Fatal(err)
	}

	// The number stays reserved even after the soft delete.
	if _, err := svc.CreateTable(tableInput(3)); !errors.Is(err, ErrDuplicateTableNumber) {
		t.Fatalf("after soft delete: got %v, want ErrDuplicateTableNumber", err)
	}
}

func TestCreateTableUniqueIndexRace(t *testing.T) {
	repo := newStubTableRepo()
	svc := NewTableService(repo)

	winner := &models.Table{TableNumber: 5, Capacity: 4, IsActive: true}
	winner.ID = 99
	repo.tables[99] = *winner
	repo.precheckBlind = true

	if _, err := svc.CreateTable(tableInput(5)); !errors.Is(err, ErrDuplicateTableNumber) {
		t.Fatalf("got %v, want ErrDuplicateTableNumber from index violation", err)
	}
}

func TestUpdateTableStatusToggle(t *testing.T) {
	svc := NewTableService(newStubTableRepo())

	created, err := svc.CreateTable(tableInput(1))
	if err != nil {
		t.Fatal(err)
	}

	occupied, err := svc.UpdateTableStatus(created.ID, string(models.TableOccupied), "Dana")
	if err != nil {
		t.Fatal(err)
	}
	if occupied.CustomerName != "Dana" {
		t.Errorf("customer name = %q, want Dana", occupied.CustomerName)
	}

	// Any status may follow any other; leaving occupied clears the name.
	available, err := svc.UpdateTableStatus(created.ID, string(models.TableAvailable), "")
	if err != nil {
		t.Fatal(err)
	}
	if available.CustomerName != "" {
		t.Errorf("customer name = %q, want cleared", available.CustomerName)
	}

	if _, err := svc.UpdateTableStatus(created.ID, "broken", ""); !errors.Is(err, ErrInvalidTableStatus) {
		t.Errorf("got %v, want ErrInvalidTableStatus", err)
	}
}

func TestDeleteTableSoftDelete(t *testing.T) {
	repo := newStubTableRepo()
	svc := NewTableService(repo)

	created, err := svc.CreateTable(tableInput(2))
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteTable(created.ID); err != nil {
		t.Fatal(err)
	}

	// The row still exists; it is just inactive.
	row, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if row.IsActive {
		t.Error("deleted table still active")
	}

	tables, err := svc.GetTables()
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 0 {
		t.Errorf("deleted table still listed: %d tables", len(tables))
	}

	// A second delete, and any status update, see it as gone.
	if err := svc.DeleteTable(created.ID); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("second delete: got %v, want ErrTableNotFound", err)
	}
	if _, err := svc.UpdateTableStatus(created.ID, string(models.TableOccupied), ""); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("status update on deleted table: got %v, want ErrTableNotFound", err)
	}
	if err := svc.DeleteTable(999); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("unknown id: got %v, want ErrTableNotFound", err)
	}
}

func TestSuggestPlacement(t *testing.T) {
	svc := NewTableService(newStubTableRepo())

	// Table 1 covers (0,0); table 3 exists so the next free number is 2.
	if _, err := svc.CreateTable(&CreateTableInput{TableNumber: 1, Capacity: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateTable(&CreateTableInput{TableNumber: 3, Capacity: 2, PositionX: 1, PositionY: 0}); err != nil {
		t.Fatal(err)
	}

	suggestion, err := svc.SuggestPlacement()
	if err != nil {
		t.Fatal(err)
	}
	if suggestion.TableNumber != 2 {
		t.Errorf("suggested number = %d, want 2", suggestion.TableNumber)
	}
	if !suggestion.HasPosition || suggestion.PositionX != 2 || suggestion.PositionY != 0 {
		t.Errorf("suggested cell = (%d,%d), want (2,0)", suggestion.PositionX, suggestion.PositionY)
	}
}

func TestSuggestPlacementSkipsSoftDeletedNumbersButNotCells(t *testing.T) {
	svc := NewTableService(newStubTableRepo())

	created, err := svc.CreateTable(&CreateTableInput{TableNumber: 1, Capacity: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteTable(created.ID); err != nil {
		t.Fatal(err)
	}

	suggestion, err := svc.SuggestPlacement()
	if err != nil {
		t.Fatal(err)
	}
	// Number 1 stays reserved, but the grid cell it held is free again.
	if suggestion.TableNumber != 2 {
		t.Errorf("suggested number = %d, want 2", suggestion.TableNumber)
	}
	if !suggestion.HasPosition || suggestion.PositionX != 0 || suggestion.PositionY != 0 {
		t.Errorf("suggested cell = (%d,%d), want (0,0)", suggestion.PositionX, suggestion.PositionY)
	}
}

func TestSuggestPlacementFullGrid(t *testing.T) {
	repo := newStubTableRepo()
	svc := NewTableService(repo)

	// One table spanning the whole grid.
	wall := &models.Table{TableNumber: 1, Capacity: 20, Width: GridWidth, Height: GridHeight, IsActive: true}
	if err := repo.Create(wall); err != nil {
		t.Fatal(err)
	}

	suggestion, err := svc.SuggestPlacement()
	if err != nil {
		t.Fatal(err)
	}
	if suggestion.HasPosition {
		t.Error("full grid must report no free position")
	}
}
