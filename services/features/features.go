// Package features answers per-user capability questions such as "may this
// client release part of a milestone". Flags are rows in feature_flags,
// default off, cached in-process for FEATURE_CACHE_TTL.
package features

import (
	"context"
	"fmt"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

type Key string

const (
	KYCRequired      Key = "KYC_REQUIRED"
	WalletEnabled    Key = "WALLET_ENABLED"
	WebhooksEnabled  Key = "WEBHOOKS_ENABLED"
	MessagingEnabled Key = "MESSAGING_ENABLED"
	PartialRelease   Key = "PARTIAL_RELEASE"
	FileUploads      Key = "FILE_UPLOADS"
)

var AllKeys = []Key{KYCRequired, WalletEnabled, WebhooksEnabled, MessagingEnabled, PartialRelease, FileUploads}

var ErrUnknownFeature = models.NewKindedError(models.KindValidation, "UNKNOWN_FEATURE", "unknown feature key")

func ParseKey(s string) (Key, error) {
	for _, k := range AllKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeature, s)
}

// Capabilities is a resolved snapshot of one user's flags. Operations take
// it as a parameter instead of looking flags up themselves.
type Capabilities map[Key]bool

func (c Capabilities) Enabled(k Key) bool {
	return c[k]
}

// With returns the set with k forced on. Handy for tests and admin tooling.
func With(keys ...Key) Capabilities {
	c := Capabilities{}
	for _, k := range keys {
		c[k] = true
	}
	return c
}

type FeatureService struct {
	store  db.Querier
	cache  *cache.Cache
	logger *logging.Logger
}

func NewFeatureService(store db.Querier, logger *logging.Logger, ttl time.Duration) *FeatureService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &FeatureService{
		store:  store,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("features:%d", userID)
}

// Lookup returns every known flag for the user, unset ones false.
func (f *FeatureService) Lookup(ctx context.Context, userID int64) (Capabilities, error) {
	if v, ok := f.cache.Get(cacheKey(userID)); ok {
		return v.(Capabilities), nil
	}

	rows, err := f.store.ListFeatureFlags(ctx, userID)
	if err != nil {
		return nil, err
	}

	caps := Capabilities{}
	for _, k := range AllKeys {
		caps[k] = false
	}
	for _, r := range rows {
		if k, err := ParseKey(r.Key); err == nil {
			caps[k] = r.Enabled
		}
	}

	f.cache.Set(cacheKey(userID), caps, cache.DefaultExpiration)
	return caps, nil
}

// Set writes one flag and drops the user's cached snapshot.
func (f *FeatureService) Set(ctx context.Context, admin models.Actor, userID int64, key Key, enabled bool) (db.FeatureFlag, error) {
	flag, err := f.store.UpsertFeatureFlag(ctx, db.UpsertFeatureFlagParams{
		UserID:  userID,
		Key:     string(key),
		Enabled: enabled,
	})
	if err != nil {
		return db.FeatureFlag{}, err
	}
	f.cache.Delete(cacheKey(userID))

	f.logger.WithFields(logrus.Fields{
		"admin_id": admin.UserID,
		"user_id":  userID,
		"key":      key,
		"enabled":  enabled,
	}).Info("feature flag updated")
	return flag, nil
}

// Flush empties the capability cache.
func (f *FeatureService) Flush() {
	f.cache.Flush()
}
