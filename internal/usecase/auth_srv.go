package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/dto/response"
	"farm-storefront/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthService is the session store: the only place that creates, refreshes
// or destroys a storefront session.
type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, meta request.ClientMeta) (*response.AuthResponse, error)
	Logout(ctx context.Context, session *entity.Session) error
	FetchProfile(ctx context.Context, session *entity.Session) (*entity.Profile, error)
	Current(ctx context.Context, token string) (*entity.Session, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.MessageResponse, error)
	SendEmailOTP(ctx context.Context, session *entity.Session) (*response.MessageResponse, error)
	VerifyEmail(ctx context.Context, session *entity.Session, req *request.VerifyEmailRequest) (*response.SessionResponse, error)
	Invalidate(ctx context.Context, session *entity.Session)
	PruneExpired(ctx context.Context) (int64, error)
}

type authService struct {
	repo   *repository.Repository // session + account
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta request.ClientMeta) (*response.AuthResponse, error) {
	// 1. Validasi
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Token dari upstream; jangan kirim bearer session lama
	ctx = utils.SetAccessTokenContext(ctx, "")
	pair, err := s.repo.Account.IssueToken(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	// 3. Persist session
	now := s.now()
	token := utils.GenerateSessionToken()
	session := &entity.Session{
		BaseNoDelete: entity.NewBaseNoDelete(now),
		TokenHash:    utils.HashToken(token),
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		UserAgent:    optional(meta.UserAgent),
		IPAddress:    optional(meta.IPAddress),
		ExpiresAt:    s.expiryFor(pair.Access, now),
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// 4. Fetch profile; kalau gagal session sudah di-revoke
	profile, err := s.FetchProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("session_id", session.ID.String()),
		zap.String("username", profile.Username),
		zap.String("role", string(profile.Role)),
	)

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Landing:   LandingFor(profile.Role),
		Session:   response.SessionToResponse(session, now),
	}, nil
}

func (s *authService) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return ErrNotAuthenticated
	}
	if err := s.repo.Session.Revoke(ctx, session.TokenHash); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrNotAuthenticated
		}
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("session_id", session.ID.String()))
		return fmt.Errorf("failed to logout: %w", err)
	}
	session.Profile = nil

	s.log.Info("User logged out", zap.String("session_id", session.ID.String()))
	return nil
}

// FetchProfile replaces the cached profile wholesale. Any failure, transient
// or not, ends the session.
func (s *authService) FetchProfile(ctx context.Context, session *entity.Session) (*entity.Profile, error) {
	if session == nil {
		return nil, ErrNotAuthenticated
	}

	profile, err := s.repo.Account.GetProfile(utils.SetSessionContext(ctx, session))
	if err != nil {
		s.log.Warn("Profile fetch failed, revoking session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		s.Invalidate(ctx, session)
		return nil, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	if err := s.repo.Session.UpdateProfile(ctx, session.TokenHash, profile); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			session.Profile = nil
			return nil, ErrNotAuthenticated
		}
		s.log.Error("Failed to store profile", zap.Error(err), zap.String("session_id", session.ID.String()))
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}
	session.Profile = profile

	return profile, nil
}

// Current resolves a presented token. Unknown, revoked and expired tokens all
// come back as nil without an error.
func (s *authService) Current(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.repo.Session.FindValidSession(ctx, utils.HashToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.MessageResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	msg, err := s.repo.Account.Register(utils.SetAccessTokenContext(ctx, ""), entity.Registration{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if msg == "" {
		msg = "Registration successful"
	}

	s.log.Info("User registered", zap.String("email", req.Email), zap.String("username", req.Username))
	return &response.MessageResponse{Message: msg}, nil
}

func (s *authService) SendEmailOTP(ctx context.Context, session *entity.Session) (*response.MessageResponse, error) {
	if !session.IsLoggedIn(s.now()) {
		return nil, ErrNotAuthenticated
	}

	msg, err := s.repo.Account.SendEmailOTP(utils.SetSessionContext(ctx, session))
	if err != nil {
		return nil, fmt.Errorf("send email otp: %w", err)
	}
	if msg == "" {
		msg = "OTP sent to your email"
	}
	return &response.MessageResponse{Message: msg}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, session *entity.Session, req *request.VerifyEmailRequest) (*response.SessionResponse, error) {
	if !session.IsLoggedIn(s.now()) {
		return nil, ErrNotAuthenticated
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.Account.VerifyEmailOTP(utils.SetSessionContext(ctx, session), req.OTP); err != nil {
		return nil, fmt.Errorf("verify email: %w", err)
	}

	// refetch supaya navigasi langsung buka Cart/Orders
	if _, err := s.FetchProfile(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Email verified", zap.String("username", session.Profile.Username))
	resp := response.SessionToResponse(session, s.now())
	return &resp, nil
}

// Invalidate revokes a session after the upstream rejected its token.
func (s *authService) Invalidate(ctx context.Context, session *entity.Session) {
	if session == nil {
		return
	}
	session.Profile = nil
	err := s.repo.Session.Revoke(ctx, session.TokenHash)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("session_id", session.ID.String()))
	}
}

func (s *authService) PruneExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	s.log.Info("Pruned expired sessions", zap.Int64("deleted", n))
	return n, nil
}

// expiryFor follows the upstream access token's exp claim when it has one.
// The signature is not checked here; the upstream verifies its own tokens.
func (s *authService) expiryFor(accessToken string, now time.Time) time.Time {
	fallback := now.Add(s.config.Session.TTL)

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return fallback
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(now) {
		return fallback
	}
	return claims.ExpiresAt.Time
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
