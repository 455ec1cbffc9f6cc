package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/database"
	jwtpkg "github.com/mrshoofer/mrshoofer/internal/pkg/jwt"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/services/admins/mocks"
	"github.com/mrshoofer/mrshoofer/services/admins/repository"
	notificationmocks "github.com/mrshoofer/mrshoofer/services/notifications/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminPhone   = "09121234567"
	jwtSecret    = "test-jwt-secret"
	adminSecret  = "bootstrap-secret"
	testPassword = "correct horse"
)

type testDeps struct {
	repo     *mocks.MockAdminRepo
	store    *mocks.MockOTPStore
	notifier *notificationmocks.MockNotificationUC
}

func newTestAdminUC(t *testing.T) (*AdminUC, testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	passwordCost = bcrypt.MinCost

	deps := testDeps{
		repo:     mocks.NewMockAdminRepo(ctrl),
		store:    mocks.NewMockOTPStore(ctrl),
		notifier: notificationmocks.NewMockNotificationUC(ctrl),
	}
	cfg := &models.Config{
		JWT: models.JWTConfig{Secret: jwtSecret, Expiration: 60, Issuer: "mrshoofer"},
		Admin: models.AdminConfig{
			Secret:          adminSecret,
			OTPLength:       5,
			OTPTTL:          5 * time.Minute,
			OTPResendWindow: 60 * time.Second,
			OTPMaxAttempts:  5,
		},
	}
	uc := NewAdminUC(deps.repo, deps.store, deps.notifier, cfg)
	uc.randomCode = func(n int) (string, error) { return "48213"[:n], nil }
	return uc, deps
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	id := uuid.New()

	t.Run("Bcrypt password", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.repo.EXPECT().
			GetByIdentifier(gomock.Any(), "ops@mrshoofer.ir").
			Return(&models.Admin{ID: id, Name: "ops", PasswordHash: hashed(t, testPassword), IsSuperAdmin: true}, nil)

		auth, err := uc.Login(context.Background(), models.LoginRequest{Identifier: " ops@mrshoofer.ir ", Password: testPassword})
		require.NoError(t, err)
		assert.Equal(t, id.String(), auth.AdminID)
		assert.True(t, auth.IsSuperAdmin)

		claims, err := jwtpkg.ValidateToken(auth.Token, jwtSecret)
		require.NoError(t, err)
		assert.Equal(t, id.String(), claims.AdminID)
		assert.True(t, claims.SuperAdmin)
	})

	t.Run("Legacy plaintext is rehashed", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.repo.EXPECT().
			GetByIdentifier(gomock.Any(), "ops").
			Return(&models.Admin{ID: id, Name: "ops", PasswordHash: testPassword}, nil)
		deps.repo.EXPECT().
			UpdatePassword(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(testPassword)))
				return nil
			})

		_, err := uc.Login(context.Background(), models.LoginRequest{Identifier: "ops", Password: testPassword})
		assert.NoError(t, err)
	})

	t.Run("Rehash failure still logs in", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.repo.EXPECT().
			GetByIdentifier(gomock.Any(), "ops").
			Return(&models.Admin{ID: id, PasswordHash: testPassword}, nil)
		deps.repo.EXPECT().UpdatePassword(gomock.Any(), id, gomock.Any()).Return(errors.New("db down"))

		_, err := uc.Login(context.Background(), models.LoginRequest{Identifier: "ops", Password: testPassword})
		assert.NoError(t, err)
	})

	t.Run("Wrong password", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.repo.EXPECT().
			GetByIdentifier(gomock.Any(), "ops").
			Return(&models.Admin{ID: id, PasswordHash: hashed(t, testPassword)}, nil)

		_, err := uc.Login(context.Background(), models.LoginRequest{Identifier: "ops", Password: "guess"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("Unknown admin", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.repo.EXPECT().GetByIdentifier(gomock.Any(), "ghost").Return(nil, apperrors.NotFound("admin"))

		_, err := uc.Login(context.Background(), models.LoginRequest{Identifier: "ghost", Password: "x"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("Missing password", func(t *testing.T) {
		uc, _ := newTestAdminUC(t)

		_, err := uc.Login(context.Background(), models.LoginRequest{Identifier: "ops"})
		assert.True(t, errors.Is(err, apperrors.ErrMissingField))
	})
}

func TestRequestOTP(t *testing.T) {
	t.Run("Sends code", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		gomock.InOrder(
			deps.repo.EXPECT().GetByPhone(gomock.Any(), adminPhone).Return(&models.Admin{ID: uuid.New()}, nil),
			deps.store.EXPECT().Reserve(gomock.Any(), adminPhone, 60*time.Second).Return(true, nil),
			deps.store.EXPECT().
				Save(gomock.Any(), gomock.Any(), 5*time.Minute).
				DoAndReturn(func(_ context.Context, otp *models.OTP, _ time.Duration) error {
					assert.Equal(t, "48213", otp.Code)
					assert.Equal(t, now.Add(5*time.Minute), otp.ExpiresAt)
					return nil
				}),
			deps.notifier.EXPECT().
				Dispatch(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n *models.Notification) error {
					assert.Equal(t, models.NotificationAdminOTP, n.Kind)
					assert.Equal(t, adminPhone, n.Phone)
					assert.Equal(t, "48213", n.Code)
					return nil
				}),
		)

		issued, err := uc.RequestOTP(context.Background(), "+98 912 123 4567")
		require.NoError(t, err)
		assert.Equal(t, adminPhone, issued.Phone)
		assert.Equal(t, 60, issued.ResendIn)
	})

	t.Run("Within resend window", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.repo.EXPECT().GetByPhone(gomock.Any(), adminPhone).Return(&models.Admin{}, nil)
		deps.store.EXPECT().Reserve(gomock.Any(), adminPhone, gomock.Any()).Return(false, nil)

		_, err := uc.RequestOTP(context.Background(), adminPhone)
		assert.True(t, errors.Is(err, apperrors.ErrRateLimited))
	})

	t.Run("SMS failure clears the code", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.repo.EXPECT().GetByPhone(gomock.Any(), adminPhone).Return(&models.Admin{}, nil)
		deps.store.EXPECT().Reserve(gomock.Any(), adminPhone, gomock.Any()).Return(true, nil)
		deps.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		deps.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("sms.ir: 502"))
		deps.store.EXPECT().Delete(gomock.Any(), adminPhone).Return(nil)
		deps.store.EXPECT().Release(gomock.Any(), adminPhone).Return(nil)

		_, err := uc.RequestOTP(context.Background(), adminPhone)
		assert.ErrorContains(t, err, "failed to send otp")
	})

	t.Run("Unknown phone", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.repo.EXPECT().GetByPhone(gomock.Any(), adminPhone).Return(nil, apperrors.NotFound("admin"))

		_, err := uc.RequestOTP(context.Background(), adminPhone)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("Malformed phone", func(t *testing.T) {
		uc, _ := newTestAdminUC(t)

		_, err := uc.RequestOTP(context.Background(), "12")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidPayload))
	})
}

func TestVerifyOTP(t *testing.T) {
	future := time.Now().Add(4 * time.Minute)

	t.Run("Correct code", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		id := uuid.New()
		deps.store.EXPECT().Get(gomock.Any(), adminPhone).
			Return(&models.OTP{Phone: adminPhone, Code: "48213", ExpiresAt: future}, nil)
		deps.store.EXPECT().Delete(gomock.Any(), adminPhone).Return(nil)
		deps.repo.EXPECT().GetByPhone(gomock.Any(), adminPhone).Return(&models.Admin{ID: id, Name: "ops"}, nil)

		auth, err := uc.VerifyOTP(context.Background(), adminPhone, "48213")
		require.NoError(t, err)
		assert.Equal(t, id.String(), auth.AdminID)
		assert.NotEmpty(t, auth.Token)
	})

	t.Run("Wrong code counts an attempt", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.store.EXPECT().Get(gomock.Any(), adminPhone).
			Return(&models.OTP{Code: "48213", Attempts: 1, ExpiresAt: future}, nil)
		deps.store.EXPECT().IncrAttempts(gomock.Any(), adminPhone, gomock.Any()).Return(2, nil)

		_, err := uc.VerifyOTP(context.Background(), adminPhone, "11111")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("Last wrong guess burns the code", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.store.EXPECT().Get(gomock.Any(), adminPhone).
			Return(&models.OTP{Code: "48213", Attempts: 4, ExpiresAt: future}, nil)
		deps.store.EXPECT().IncrAttempts(gomock.Any(), adminPhone, gomock.Any()).Return(5, nil)
		deps.store.EXPECT().Delete(gomock.Any(), adminPhone).Return(nil)

		_, err := uc.VerifyOTP(context.Background(), adminPhone, "11111")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("Attempts exhausted", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.store.EXPECT().Get(gomock.Any(), adminPhone).
			Return(&models.OTP{Code: "48213", Attempts: 5, ExpiresAt: future}, nil)
		deps.store.EXPECT().Delete(gomock.Any(), adminPhone).Return(nil)

		_, err := uc.VerifyOTP(context.Background(), adminPhone, "48213")
		assert.True(t, errors.Is(err, apperrors.ErrRateLimited))
	})

	t.Run("Expired", func(t *testing.T) {
		uc, deps := newTestAdminUC(t)
		deps.store.EXPECT().Get(gomock.Any(), adminPhone).Return(nil, apperrors.NotFound("otp"))

		_, err := uc.VerifyOTP(context.Background(), adminPhone, "48213")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})
}

func TestOTPResendWindowSurvivesBurn(t *testing.T) {
	uc, deps := newTestAdminUC(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	uc.otpStore = repository.NewOTPStore(database.NewRedisClientFromClient(client))

	deps.repo.EXPECT().GetByPhone(gomock.Any(), adminPhone).Return(&models.Admin{ID: uuid.New()}, nil).AnyTimes()
	deps.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	ctx := context.Background()
	_, err := uc.RequestOTP(ctx, adminPhone)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := uc.VerifyOTP(ctx, adminPhone, "00000")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	}

	_, err = uc.VerifyOTP(ctx, adminPhone, "48213")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials), "burned code must not verify")

	_, err = uc.RequestOTP(ctx, adminPhone)
	assert.True(t, errors.Is(err, apperrors.ErrRateLimited))

	mr.FastForward(61 * time.Second)
	_, err = uc.RequestOTP(ctx, adminPhone)
	require.NoError(t, err)
}
