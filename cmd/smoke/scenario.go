package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
)

var errUnexpectedResult = errors.New("unexpected result")

type scenario struct {
	adapter adapter.ServerAdapter
	suffix  func() string
	logger  *logger.Logger
}

func newScenario(a adapter.ServerAdapter, suffix func() string, log *logger.Logger) *scenario {
	return &scenario{adapter: a, suffix: suffix, logger: log}
}

// run walks one fresh account through signup, login, create, list, update,
// delete and a final empty list.
func (s *scenario) run(ctx context.Context) error {
	if err := s.adapter.Health(ctx); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	version, err := s.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}
	s.logger.Info().Str("server_version", version).Msg("server is up")

	id := s.suffix()
	signup := models.SignupRequest{
		FirstName: "Smoke",
		LastName:  "Test",
		Email:     "smoke-" + id + "@example.com",
		Username:  "smoke-" + id,
		Password:  "smoke-" + id,
	}

	user, err := s.adapter.Signup(ctx, signup)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	s.logger.Info().Int64("user_id", user.UserID).Msg("signed up")

	if _, err = s.adapter.Login(ctx, models.LoginRequest{Email: signup.Email, Password: signup.Password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	greeting, err := s.adapter.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	if !strings.Contains(greeting, signup.Email) {
		return fmt.Errorf("dashboard: %w: %q", errUnexpectedResult, greeting)
	}

	created, err := s.adapter.CreateEntry(ctx, models.EntryPayload{
		Title:    "Smoke " + id,
		Income:   models.Lines[models.Income]{{Label: "salary", Amount: 1000}},
		Expenses: models.Lines[models.Expense]{{Label: "rent", Amount: 400, Category: "home"}},
	})
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	s.logger.Info().Str("entry_id", created.ID).Msg("entry created")

	if err = s.expectEntries(ctx, created.ID); err != nil {
		return err
	}

	title := "Smoke " + id + " (edited)"
	updated, err := s.adapter.UpdateEntry(ctx, created.ID, models.EntryPatch{Title: &title})
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if updated.Title != title {
		return fmt.Errorf("update entry: %w: title %q", errUnexpectedResult, updated.Title)
	}

	if err = s.adapter.DeleteEntry(ctx, created.ID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	return s.expectEntries(ctx)
}

func (s *scenario) expectEntries(ctx context.Context, ids ...string) error {
	entries, err := s.adapter.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	if len(entries) != len(ids) {
		return fmt.Errorf("list entries: %w: got %d entries, want %d", errUnexpectedResult, len(entries), len(ids))
	}
	for i, id := range ids {
		if entries[i].ID != id {
			return fmt.Errorf("list entries: %w: entry %d is %q, want %q", errUnexpectedResult, i, entries[i].ID, id)
		}
	}
	return nil
}
