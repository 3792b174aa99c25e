// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// Field name constants used to restrict entry validation to a subset of
// fields (field-level scoping).
const (
	// FieldTitle targets the entry title. Required on create, non-blank when patched.
	FieldTitle = "title"

	// FieldDates targets the start/end date pair.
	FieldDates = "dates"

	// FieldIncome targets the income lines.
	FieldIncome = "income"

	// FieldExpenses targets the expense lines.
	FieldExpenses = "expenses"
)

var defaultEntryFields = []string{FieldTitle, FieldDates, FieldIncome, FieldExpenses}

// EntryValidator implements [Validator] for models.EntryPayload,
// models.EntryPatch and a whole models.Entry (a patch merged into the stored
// row). Both value and pointer forms are accepted.
type EntryValidator struct{}

// NewEntryValidator constructs a new EntryValidator and returns it as the
// Validator interface.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything other than an entry, entry payload or patch.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.EntryPayload:
		return v.validatePayload(ctx, *value, fields...)

	case models.EntryPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.EntryPatch:
		return v.validatePatch(ctx, *value, fields...)

	case models.Entry:
		return v.validatePayload(ctx, entryAsPayload(value), fields...)
	case *models.Entry:
		return v.validatePayload(ctx, entryAsPayload(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validatePayload(_ context.Context, payload models.EntryPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultEntryFields
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(payload.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDates:
			if err := validateDateRange(payload.StartDate, payload.EndDate); err != nil {
				return err
			}
		case FieldIncome:
			if err := validateIncome(payload.Income); err != nil {
				return err
			}
		case FieldExpenses:
			if err := validateExpenses(payload.Expenses); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch checks only the fields present in the patch. The date
// range is checked only when both ends are patched together; a one-sided
// date patch is checked against the stored row by EntryValidationService.
func (v *EntryValidator) validatePatch(_ context.Context, patch models.EntryPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultEntryFields
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDates:
			if err := validateDateRange(patch.StartDate, patch.EndDate); err != nil {
				return err
			}
		case FieldIncome:
			if patch.Income != nil {
				if err := validateIncome(*patch.Income); err != nil {
					return err
				}
			}
		case FieldExpenses:
			if patch.Expenses != nil {
				if err := validateExpenses(*patch.Expenses); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// entryAsPayload holds a stored entry to the rules a new one must meet.
func entryAsPayload(e models.Entry) models.EntryPayload {
	return models.EntryPayload{
		Title:     e.Title,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Income:    e.Income,
		Expenses:  e.Expenses,
	}
}

func validateDateRange(start, end *models.Date) error {
	if start != nil && end != nil && end.Before(start.Time) {
		return ErrInvalidDateRange
	}
	return nil
}

func validateIncome(lines models.Lines[models.Income]) error {
	for i, line := range lines {
		if !validAmount(line.Amount) {
			return fmt.Errorf("income at index %d: %w", i, ErrInvalidAmount)
		}
	}
	return nil
}

func validateExpenses(lines models.Lines[models.Expense]) error {
	for i, line := range lines {
		if !validAmount(line.Amount) {
			return fmt.Errorf("expense at index %d: %w", i, ErrInvalidAmount)
		}
	}
	return nil
}

func validAmount(a float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) && a >= 0
}
