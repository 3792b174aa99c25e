// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Income is a single income line of an entry.
type Income struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Expense is a single expense line of an entry.
type Expense struct {
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// Lines is an ordered sequence of entry line items.
//
// A nil Lines is serialized as an empty JSON array, never as null, both in
// API responses and in the database column that stores it.
type Lines[T Income | Expense] []T

func (l Lines[T]) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]T(l))
}

// Value implements [driver.Valuer] and stores the lines as a JSON document.
func (l Lines[T]) Value() (driver.Value, error) {
	data, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements [sql.Scanner] for JSON/JSONB and TEXT columns.
func (l *Lines[T]) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = Lines[T]{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into entry lines", src)
	}

	items := make([]T, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("error decoding entry lines: %w", err)
	}
	*l = items
	return nil
}

// Entry is a dated record of income and expense lines owned by exactly one user.
type Entry struct {
	// ID is a server-generated UUIDv7.
	ID string `json:"id"`

	// UserID is the owner. It is set from the authenticated caller and never
	// changes afterwards.
	UserID int64 `json:"userId"`

	Title     string         `json:"title"`
	StartDate *Date          `json:"startDate,omitempty"`
	EndDate   *Date          `json:"endDate,omitempty"`
	Income    Lines[Income]  `json:"income"`
	Expenses  Lines[Expense] `json:"expenses"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "entries"
}

// EntryPayload is the client-supplied body for entry creation.
// It deliberately has no owner field: any "userId" in the request body is dropped.
type EntryPayload struct {
	Title     string         `json:"title"`
	StartDate *Date          `json:"startDate"`
	EndDate   *Date          `json:"endDate"`
	Income    Lines[Income]  `json:"income"`
	Expenses  Lines[Expense] `json:"expenses"`
}

// EntryPatch is a partial update. Only non-nil fields are applied.
type EntryPatch struct {
	Title     *string         `json:"title,omitempty"`
	StartDate *Date           `json:"startDate,omitempty"`
	EndDate   *Date           `json:"endDate,omitempty"`
	Income    *Lines[Income]  `json:"income,omitempty"`
	Expenses  *Lines[Expense] `json:"expenses,omitempty"`
}

// Apply returns a copy of e with the patch fields applied.
func (p EntryPatch) Apply(e Entry) Entry {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.StartDate != nil {
		e.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate
	}
	if p.Income != nil {
		e.Income = *p.Income
	}
	if p.Expenses != nil {
		e.Expenses = *p.Expenses
	}
	return e
}
