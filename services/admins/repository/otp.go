package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/constants"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// Reserve sets the resend cooldown for phone unless one is already running
func (s *OTPStore) Reserve(ctx context.Context, phone string, window time.Duration) (bool, error) {
	key := fmt.Sprintf(constants.KeyAdminOTPCooldown, phone)
	ok, err := s.redisClient.GetClient().SetNX(ctx, key, "1", window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve otp window: %w", err)
	}
	return ok, nil
}

// Save stores otp and resets its attempt counter
func (s *OTPStore) Save(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal otp: %w", err)
	}

	client := s.redisClient.GetClient()
	pipe := client.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf(constants.KeyAdminOTP, otp.Phone), data, ttl)
	pipe.Del(ctx, fmt.Sprintf(constants.KeyAdminOTPAttempts, otp.Phone))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

// Get returns the live code for phone with its failed attempt count
func (s *OTPStore) Get(ctx context.Context, phone string) (*models.OTP, error) {
	client := s.redisClient.GetClient()

	data, err := client.Get(ctx, fmt.Sprintf(constants.KeyAdminOTP, phone)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("otp")
		}
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal(data, &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp: %w", err)
	}

	attempts, err := client.Get(ctx, fmt.Sprintf(constants.KeyAdminOTPAttempts, phone)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		otp.Attempts = 0
	case err != nil:
		return nil, fmt.Errorf("failed to get otp attempts: %w", err)
	default:
		otp.Attempts, _ = strconv.Atoi(attempts)
	}
	return &otp, nil
}

// IncrAttempts records a failed verification and returns the new count
func (s *OTPStore) IncrAttempts(ctx context.Context, phone string, ttl time.Duration) (int, error) {
	client := s.redisClient.GetClient()
	key := fmt.Sprintf(constants.KeyAdminOTPAttempts, phone)

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count otp attempt: %w", err)
	}
	if count == 1 {
		if err := client.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, fmt.Errorf("failed to expire otp attempts: %w", err)
		}
	}
	return int(count), nil
}

// Delete drops the code and its attempts. The resend cooldown keeps running.
func (s *OTPStore) Delete(ctx context.Context, phone string) error {
	err := s.redisClient.GetClient().Del(ctx,
		fmt.Sprintf(constants.KeyAdminOTP, phone),
		fmt.Sprintf(constants.KeyAdminOTPAttempts, phone),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}

// Release ends the resend cooldown for phone
func (s *OTPStore) Release(ctx context.Context, phone string) error {
	if err := s.redisClient.GetClient().Del(ctx, fmt.Sprintf(constants.KeyAdminOTPCooldown, phone)).Err(); err != nil {
		return fmt.Errorf("failed to release otp window: %w", err)
	}
	return nil
}
