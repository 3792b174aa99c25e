package main

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedSuffix() string { return "s1" }

func expectHappyPathUntilCreate(a *mock.MockServerAdapter) {
	a.EXPECT().Health(gomock.Any()).Return(nil)
	a.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)
	a.EXPECT().Signup(gomock.Any(), models.SignupRequest{
		FirstName: "Smoke",
		LastName:  "Test",
		Email:     "smoke-s1@example.com",
		Username:  "smoke-s1",
		Password:  "smoke-s1",
	}).Return(models.User{UserID: 1, Email: "smoke-s1@example.com"}, nil)
	a.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "smoke-s1@example.com", Password: "smoke-s1"}).
		Return(models.LoginResponse{Token: "tok"}, nil)
	a.EXPECT().Dashboard(gomock.Any()).Return("Welcome back, smoke-s1@example.com", nil)
	a.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(models.Entry{ID: "e-1", Title: "Smoke s1"}, nil)
}

func TestScenario_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)

	expectHappyPathUntilCreate(a)
	gomock.InOrder(
		a.EXPECT().ListEntries(gomock.Any()).Return([]models.Entry{{ID: "e-1"}}, nil),
		a.EXPECT().UpdateEntry(gomock.Any(), "e-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch models.EntryPatch) (models.Entry, error) {
				return models.Entry{ID: "e-1", Title: *patch.Title}, nil
			}),
		a.EXPECT().DeleteEntry(gomock.Any(), "e-1").Return(nil),
		a.EXPECT().ListEntries(gomock.Any()).Return([]models.Entry{}, nil),
	)

	err := newScenario(a, fixedSuffix, logger.Nop()).run(context.Background())

	require.NoError(t, err)
}

func TestScenario_StopsOnSignupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)

	signupErr := errors.New("conflict")
	a.EXPECT().Health(gomock.Any()).Return(nil)
	a.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)
	a.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.User{}, signupErr)

	err := newScenario(a, fixedSuffix, logger.Nop()).run(context.Background())

	require.ErrorIs(t, err, signupErr)
	assert.Contains(t, err.Error(), "signup")
}

func TestScenario_DetectsEntryLeftAfterDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)

	expectHappyPathUntilCreate(a)
	gomock.InOrder(
		a.EXPECT().ListEntries(gomock.Any()).Return([]models.Entry{{ID: "e-1"}}, nil),
		a.EXPECT().UpdateEntry(gomock.Any(), "e-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch models.EntryPatch) (models.Entry, error) {
				return models.Entry{ID: "e-1", Title: *patch.Title}, nil
			}),
		a.EXPECT().DeleteEntry(gomock.Any(), "e-1").Return(nil),
		a.EXPECT().ListEntries(gomock.Any()).Return([]models.Entry{{ID: "e-1"}}, nil),
	)

	err := newScenario(a, fixedSuffix, logger.Nop()).run(context.Background())

	require.ErrorIs(t, err, errUnexpectedResult)
}

func TestScenario_UnhealthyServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)

	a.EXPECT().Health(gomock.Any()).Return(errors.New("service unavailable"))

	err := newScenario(a, fixedSuffix, logger.Nop()).run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "health")
}
