package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mentoria/internal/cache"
	"mentoria/internal/carometro"
	apperrors "mentoria/internal/errors"
	"mentoria/internal/model"
)

func newTestProfileService(repo *MockProfileRepository) ProfileService {
	return NewProfileService(repo, carometro.NewAggregator(carometro.Options{}), nil, time.Minute, zap.NewNop())
}

func validForm() url.Values {
	return url.Values{
		"display_name":               {"Ana"},
		"experiences[][description]": {"Dev"},
		"experiences[][company]":     {"ACME"},
		"experiences[][start_year]":  {"2019"},
		"experiences[][end_year]":    {"2021"},
		"agree_terms":                {"on"},
	}
}

func TestProfileService_SubmitCreatesProfile(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	mockRepo.On("WithTransaction", mock.Anything).Return(nil)
	mockRepo.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

	service := newTestProfileService(mockRepo)
	profile, err := service.Submit(context.Background(), 42, validForm())

	require.NoError(t, err)
	assert.Equal(t, uint(42), profile.UserID)
	assert.Equal(t, "Ana", profile.DisplayName)
	require.Len(t, profile.Experiences, 1)
	assert.Equal(t, "ACME", profile.Experiences[0].Company)
	assert.True(t, bool(profile.AgreeTerms))
	mockRepo.AssertExpectations(t)
}

func TestProfileService_SubmitUpdatesExistingRecord(t *testing.T) {
	existing := &model.Profile{ID: 9, UserID: 42, DisplayName: "Old"}

	mockRepo := new(MockProfileRepository)
	mockRepo.On("WithTransaction", mock.Anything).Return(nil)
	mockRepo.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, existing).Return(nil)

	service := newTestProfileService(mockRepo)

	first, err := service.Submit(context.Background(), 42, validForm())
	require.NoError(t, err)
	second, err := service.Submit(context.Background(), 42, validForm())
	require.NoError(t, err)

	assert.Equal(t, uint64(9), first.ID)
	assert.Equal(t, uint64(9), second.ID)
	assert.Equal(t, "Ana", second.DisplayName)
	assert.Len(t, second.Experiences, 1)
	mockRepo.AssertNumberOfCalls(t, "Save", 2)
}

func TestProfileService_SubmitErrors(t *testing.T) {
	tests := []struct {
		name          string
		form          url.Values
		setupMock     func(*MockProfileRepository)
		expectedError error
		expectSave    bool
	}{
		{
			name: "missing display name",
			form: url.Values{"city": {"Recife"}},
			setupMock: func(m *MockProfileRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrValidation,
		},
		{
			name: "concurrent first submission",
			form: validForm(),
			setupMock: func(m *MockProfileRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Save", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrProfileConflict,
			expectSave:    true,
		},
		{
			name: "concurrent first submission deadlocks",
			form: validForm(),
			setupMock: func(m *MockProfileRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Save", mock.Anything, mock.Anything).Return(&mysql.MySQLError{
					Number:  1213,
					Message: "Deadlock found when trying to get lock; try restarting transaction",
				})
			},
			expectedError: apperrors.ErrProfileConflict,
			expectSave:    true,
		},
		{
			name: "lock wait timeout",
			form: validForm(),
			setupMock: func(m *MockProfileRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Save", mock.Anything, mock.Anything).Return(&mysql.MySQLError{
					Number:  1205,
					Message: "Lock wait timeout exceeded; try restarting transaction",
				})
			},
			expectedError: apperrors.ErrProfileSave,
			expectSave:    true,
		},
		{
			name: "database failure on save",
			form: validForm(),
			setupMock: func(m *MockProfileRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
			},
			expectedError: apperrors.ErrProfileSave,
			expectSave:    true,
		},
		{
			name: "database failure on load",
			form: validForm(),
			setupMock: func(m *MockProfileRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(nil, errors.New("connection reset"))
			},
			expectedError: apperrors.ErrProfileSave,
		},
		{
			name: "transaction cannot start",
			form: validForm(),
			setupMock: func(m *MockProfileRepository) {
				m.On("WithTransaction", mock.Anything).Return(errors.New("too many connections"))
			},
			expectedError: apperrors.ErrProfileSave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProfileRepository)
			tt.setupMock(mockRepo)

			service := newTestProfileService(mockRepo)
			profile, err := service.Submit(context.Background(), 42, tt.form)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, profile)
			if !tt.expectSave {
				mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProfileService_SubmitValidationErrorNamesField(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	mockRepo.On("WithTransaction", mock.Anything).Return(nil)
	mockRepo.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestProfileService(mockRepo)
	_, err := service.Submit(context.Background(), 42, url.Values{"display_name": {"   "}})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "display_name", validationErr.Field)
}

func TestProfileService_GetByUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, uint(42)).Return(&model.Profile{ID: 1, UserID: 42, DisplayName: "Ana"}, nil)

		profile, err := newTestProfileService(mockRepo).GetByUser(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, "Ana", profile.DisplayName)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		profile, err := newTestProfileService(mockRepo).GetByUser(context.Background(), 42)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, profile)
	})

	t.Run("database failure", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		dbErr := errors.New("timeout")
		mockRepo.On("FindByUserID", mock.Anything, uint(42)).Return(nil, dbErr)

		_, err := newTestProfileService(mockRepo).GetByUser(context.Background(), 42)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func newCachedProfileService(t *testing.T, repo *MockProfileRepository) (ProfileService, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewProfileService(repo, carometro.NewAggregator(carometro.Options{}), client, time.Minute, zap.NewNop()), mr
}

func TestProfileService_GetByUserServesFromCache(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, uint(42)).
		Return(&model.Profile{ID: 1, UserID: 42, DisplayName: "Ana"}, nil).Once()

	service, mr := newCachedProfileService(t, mockRepo)

	for i := 0; i < 3; i++ {
		profile, err := service.GetByUser(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "Ana", profile.DisplayName)
	}
	assert.True(t, mr.Exists("profile:42:v0"))
	mockRepo.AssertNumberOfCalls(t, "FindByUserID", 1)
}

func TestProfileService_SubmitInvalidatesCachedProfile(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	service, mr := newCachedProfileService(t, mockRepo)
	ctx := context.Background()

	mockRepo.On("FindByUserID", mock.Anything, uint(42)).
		Return(&model.Profile{ID: 1, UserID: 42, DisplayName: "Old"}, nil).Once()
	_, err := service.GetByUser(ctx, 42)
	require.NoError(t, err)
	require.True(t, mr.Exists("profile:42:v0"))

	mockRepo.On("WithTransaction", mock.Anything).Return(nil)
	mockRepo.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(&model.Profile{ID: 1, UserID: 42}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)
	_, err = service.Submit(ctx, 42, validForm())
	require.NoError(t, err)
	assert.False(t, mr.Exists("profile:42:v0"))

	mockRepo.On("FindByUserID", mock.Anything, uint(42)).
		Return(&model.Profile{ID: 1, UserID: 42, DisplayName: "Ana"}, nil).Once()
	profile, err := service.GetByUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.DisplayName)
}

func TestProfileService_ReadRacingSubmitDoesNotPinStaleProfile(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	service, _ := newCachedProfileService(t, mockRepo)
	ctx := context.Background()

	mockRepo.On("WithTransaction", mock.Anything).Return(nil)
	mockRepo.On("FindByUserIDForUpdate", mock.Anything, uint(42)).Return(&model.Profile{ID: 1, UserID: 42}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

	// The read loads the old row, then a submit commits before the read fills the cache.
	mockRepo.On("FindByUserID", mock.Anything, uint(42)).
		Run(func(mock.Arguments) {
			_, err := service.Submit(ctx, 42, validForm())
			require.NoError(t, err)
		}).
		Return(&model.Profile{ID: 1, UserID: 42, DisplayName: "Old"}, nil).Once()
	mockRepo.On("FindByUserID", mock.Anything, uint(42)).
		Return(&model.Profile{ID: 1, UserID: 42, DisplayName: "Ana"}, nil).Once()

	stale, err := service.GetByUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Old", stale.DisplayName)

	fresh, err := service.GetByUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Ana", fresh.DisplayName)
	mockRepo.AssertNumberOfCalls(t, "FindByUserID", 2)
}
