package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront-checkout/internal/core/cache"
	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/core/logger"

	"go.uber.org/zap"
)

// ProfileProvider resolves a bearer token to a customer profile.
type ProfileProvider interface {
	GetProfile(ctx context.Context, token string) (*Profile, error)
}

// RESTProfileProvider reads the profile from the storefront API.
type RESTProfileProvider struct {
	client  *http.Client
	baseURL string
}

// NewRESTProfileProvider creates a provider against baseURL.
func NewRESTProfileProvider(client *http.Client, baseURL string) *RESTProfileProvider {
	return &RESTProfileProvider{client: client, baseURL: baseURL}
}

// remoteProfile accepts both the flat and the {data: ...} envelope, with numeric or string ids.
type remoteProfile struct {
	ID        httpclient.FlexID `json:"id"`
	FullName  string            `json:"full_name"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Data      *remoteProfile    `json:"data"`
}

// GetProfile implements ProfileProvider.
func (p *RESTProfileProvider) GetProfile(ctx context.Context, token string) (*Profile, error) {
	var raw remoteProfile
	err := httpclient.DoJSON(ctx, p.client, http.MethodGet, p.baseURL+"/auth/profile", token, nil, &raw)
	if err != nil {
		if httpclient.IsStatus(err, http.StatusUnauthorized) || httpclient.IsStatus(err, http.StatusForbidden) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if raw.Data != nil {
		raw = *raw.Data
	}

	if raw.ID == "" {
		return nil, ErrInvalidToken
	}

	name := raw.FullName
	if name == "" {
		name = joinName(raw.FirstName, raw.LastName)
	}

	return &Profile{
		ID:       raw.ID.String(),
		FullName: name,
		Email:    raw.Email,
		Phone:    raw.Phone,
	}, nil
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// CachedProfileProvider memoises profiles by token digest.
type CachedProfileProvider struct {
	next  ProfileProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProfileProvider wraps next with a cache. A zero ttl disables caching.
func NewCachedProfileProvider(next ProfileProvider, c cache.Cache, ttl time.Duration) *CachedProfileProvider {
	return &CachedProfileProvider{next: next, cache: c, ttl: ttl}
}

func profileKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "profile:" + hex.EncodeToString(sum[:])
}

// GetProfile implements ProfileProvider.
func (p *CachedProfileProvider) GetProfile(ctx context.Context, token string) (*Profile, error) {
	if p.ttl <= 0 {
		return p.next.GetProfile(ctx, token)
	}

	key := profileKey(token)

	data, err := p.cache.Get(ctx, key)
	if err == nil {
		var profile Profile
		if err := json.Unmarshal(data, &profile); err == nil {
			return &profile, nil
		}
	} else if !errors.Is(err, cache.ErrKeyNotFound) {
		logger.FromContext(ctx).Warn("Profile cache read failed", zap.Error(err))
	}

	profile, err := p.next.GetProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(profile); err == nil {
		if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
			logger.FromContext(ctx).Warn("Profile cache write failed", zap.Error(err))
		}
	}

	return profile, nil
}

// compile-time checks
var (
	_ ProfileProvider = (*RESTProfileProvider)(nil)
	_ ProfileProvider = (*CachedProfileProvider)(nil)
)
