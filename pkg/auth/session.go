// Package auth resolves requests to an owner ID, from a bearer token or a
// Redis-backed cookie session.
//
// Session keys should be 32 or 64 bytes for HMAC authentication,
// and 16, 24, or 32 bytes for AES encryption. Production deployments
// must use cryptographically random keys generated with:
//
//	openssl rand -base64 32
package auth

import (
	"context"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/packstack/pkg/cache"
	"github.com/ghuser/packstack/pkg/httpx"
)

const (
	sessionName       = "packstack_session"
	sessionOwnerIDKey = "owner_id"

	// SessionMaxAge is how long a session survives without activity.
	SessionMaxAge = 14 * 24 * time.Hour
)

func sessionKey(id string) string { return cache.Key("session", id) }

// ErrNoSessionOwner is returned when a session carries no usable owner ID.
var ErrNoSessionOwner = errors.New("session has no owner")

// RedisStore is a sessions.Store backed by Redis. Only the random session ID
// travels in the cookie (HttpOnly, Secure in production, SameSite Lax).
//
// Redis keys: "packstack:session:<id>" holding the JSON-encoded values, with
// a TTL equal to MaxAge that is renewed on every save.
type RedisStore struct {
	client  *redis.Client
	codecs  []securecookie.Codec
	options *sessions.Options
}

// NewSessionStore creates a Redis-backed session store. client comes from
// pkg/cache.RedisClient.Client(); secureCookie should be true behind HTTPS.
func NewSessionStore(client *redis.Client, authKey, encryptionKey []byte, secureCookie bool) *RedisStore {
	return &RedisStore{
		client: client,
		codecs: securecookie.CodecsFromPairs(authKey, encryptionKey),
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(SessionMaxAge.Seconds()),
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Get returns the named session, cached per request by the gorilla registry.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie. A missing, tampered or
// expired cookie yields a fresh session and no error.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return session, nil
	}

	session.ID = id
	if err := s.load(r.Context(), session); err != nil {
		return session, nil
	}
	session.IsNew = false
	return session, nil
}

// Save persists the session and writes the cookie. MaxAge < 0 deletes both.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.client.Del(r.Context(), sessionKey(session.ID)).Err(); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = strings.TrimRight(
			base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
			"=",
		)
	}

	if err := s.save(r.Context(), session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// Session values are restricted to strings so they round-trip through JSON.
func (s *RedisStore) save(ctx context.Context, session *sessions.Session) error {
	values := make(map[string]string, len(session.Values))
	for k, v := range session.Values {
		ks, ok := k.(string)
		vs, ok2 := v.(string)
		if !ok || !ok2 {
			return fmt.Errorf("session value %v: only string keys and values are supported", k)
		}
		values[ks] = vs
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.client.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("set session in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, session *sessions.Session) error {
	data, err := s.client.Get(ctx, sessionKey(session.ID)).Bytes()
	if err != nil {
		return fmt.Errorf("get session from redis: %w", err)
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode session values: %w", err)
	}
	for k, v := range values {
		session.Values[k] = v
	}
	return nil
}

// SignIn binds ownerID to the caller's session and writes the cookie.
func SignIn(w http.ResponseWriter, r *http.Request, store sessions.Store, ownerID uuid.UUID) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	session.Values[sessionOwnerIDKey] = ownerID.String()
	return session.Save(r, w)
}

// SignOut deletes the caller's session.
func SignOut(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

func sessionOwner(session *sessions.Session) (uuid.UUID, error) {
	raw, ok := session.Values[sessionOwnerIDKey].(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoSessionOwner
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrNoSessionOwner, raw)
	}
	return id, nil
}

// SessionRoutes lets an already authenticated caller (usually holding a
// bearer token) switch to a cookie session, and ends it again. Mount them
// behind RequireAuth.
func SessionRoutes(store sessions.Store) (create, remove http.HandlerFunc) {
	create = func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := OwnerIDFromCtx(r.Context())
		if err != nil {
			httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if err := SignIn(w, r, store, ownerID); err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "could not start session")
			return
		}
		httpx.NoContent(w)
	}
	remove = func(w http.ResponseWriter, r *http.Request) {
		if err := SignOut(w, r, store); err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "could not end session")
			return
		}
		httpx.NoContent(w)
	}
	return create, remove
}
