package repository

import (
	"context"
	"fmt"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/upstream"

	"go.uber.org/zap"
)

// AccountRepository covers the upstream identity endpoints: token issuance,
// profile, registration and email verification.
type AccountRepository interface {
	IssueToken(ctx context.Context, email, password string) (*entity.TokenPair, error)
	GetProfile(ctx context.Context) (*entity.Profile, error)
	Register(ctx context.Context, reg entity.Registration) (string, error)
	SendEmailOTP(ctx context.Context) (string, error)
	VerifyEmailOTP(ctx context.Context, otp string) (string, error)
}

type accountRepository struct {
	api *upstream.Client
	log *zap.Logger
}

func NewAccountRepository(api *upstream.Client, log *zap.Logger) AccountRepository {
	return &accountRepository{
		api: api,
		log: log.With(zap.String("repository", "account")),
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func (r *accountRepository) IssueToken(ctx context.Context, email, password string) (*entity.TokenPair, error) {
	body := map[string]string{"email": email, "password": password}

	var pair entity.TokenPair
	if err := r.api.Post(ctx, "/api/token/", body, &pair); err != nil {
		logUpstreamError(r.log, "Failed to issue token", err, zap.String("email", email))
		return nil, fmt.Errorf("issue token for %s: %w", email, err)
	}
	if pair.Access == "" {
		return nil, fmt.Errorf("issue token for %s: empty access token", email)
	}

	return &pair, nil
}

func (r *accountRepository) GetProfile(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.api.Get(ctx, "/api/user/profile/", nil, &profile); err != nil {
		logUpstreamError(r.log, "Failed to get profile", err)
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (r *accountRepository) Register(ctx context.Context, reg entity.Registration) (string, error) {
	var resp messageResponse
	if err := r.api.Post(ctx, "/api/user/create/", reg, &resp); err != nil {
		logUpstreamError(r.log, "Failed to register user", err,
			zap.String("email", reg.Email),
			zap.String("username", reg.Username),
		)
		return "", fmt.Errorf("register %s: %w", reg.Email, err)
	}
	return resp.Message, nil
}

func (r *accountRepository) SendEmailOTP(ctx context.Context) (string, error) {
	var resp messageResponse
	if err := r.api.Post(ctx, "/api/user/get_email_otp/", struct{}{}, &resp); err != nil {
		logUpstreamError(r.log, "Failed to send email OTP", err)
		return "", fmt.Errorf("send email otp: %w", err)
	}
	return resp.Message, nil
}

func (r *accountRepository) VerifyEmailOTP(ctx context.Context, otp string) (string, error) {
	var resp messageResponse
	if err := r.api.Post(ctx, "/api/user/verify_email_otp/", map[string]string{"otp": otp}, &resp); err != nil {
		logUpstreamError(r.log, "Failed to verify email OTP", err)
		return "", fmt.Errorf("verify email otp: %w", err)
	}
	return resp.Message, nil
}
