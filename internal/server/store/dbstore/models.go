package dbstore

import (
	"encoding/json"
	"time"

	"github.com/shortlist-tui/shortlist/internal/listapi"
)

// ItemModel represents a list item in the database.
type ItemModel struct {
	ID        int64     `gorm:"primaryKey"`
	Value     string    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for ItemModel.
func (ItemModel) TableName() string {
	return "items"
}

// ToItem converts the GORM model to a wire item.
func (m *ItemModel) ToItem() listapi.Item {
	return listapi.Item{ID: m.ID, Value: m.Value}
}

// StateModel represents a session's persisted UI state record. The id
// slices are stored as JSON text; they are small and only ever read
// and written whole.
type StateModel struct {
	Session     string    `gorm:"primaryKey;size:64"`
	SelectedIDs string    `gorm:"not null;default:'[]'"`
	SortedIDs   string    `gorm:"not null;default:'[]'"`
	Offset      int       `gorm:"not null;default:0"`
	Search      string    `gorm:"not null;default:''"`
	ScrollTop   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for StateModel.
func (StateModel) TableName() string {
	return "ui_states"
}

// ToRecord converts the GORM model to a wire state record.
func (m *StateModel) ToRecord() (listapi.StateRecord, error) {
	record := listapi.StateRecord{
		Offset:    m.Offset,
		Search:    m.Search,
		ScrollTop: m.ScrollTop,
	}
	if err := json.Unmarshal([]byte(m.SelectedIDs), &record.SelectedIDs); err != nil {
		return listapi.StateRecord{}, err
	}
	if err := json.Unmarshal([]byte(m.SortedIDs), &record.SortedIDs); err != nil {
		return listapi.StateRecord{}, err
	}
	return record, nil
}

func modelFromRecord(session string, record listapi.StateRecord) (StateModel, error) {
	selected, err := json.Marshal(idsOrEmpty(record.SelectedIDs))
	if err != nil {
		return StateModel{}, err
	}
	sorted, err := json.Marshal(idsOrEmpty(record.SortedIDs))
	if err != nil {
		return StateModel{}, err
	}
	return StateModel{
		Session:     session,
		SelectedIDs: string(selected),
		SortedIDs:   string(sorted),
		Offset:      record.Offset,
		Search:      record.Search,
		ScrollTop:   record.ScrollTop,
	}, nil
}

func idsOrEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
