package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/packstack/pkg/httpx"
	"github.com/ghuser/packstack/pkg/logger"
)

// RequireAuth is a chi middleware that resolves the caller to an owner ID and injects it
// into the request context. A Bearer token is checked first when tokens is non-nil;
// otherwise the session cookie is used. Returns 401 when neither yields a valid owner.
//
// After this middleware, handlers can safely call auth.OwnerIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, tokens *TokenVerifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw, ok := bearerToken(r); ok {
				if tokens == nil {
					httpx.JSONError(w, http.StatusUnauthorized, "bearer tokens are not accepted")
					return
				}
				ownerID, err := tokens.Verify(raw)
				if err != nil {
					log.WarnContext(r.Context(), "rejected bearer token", "error", err)
					httpx.JSONError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				next.ServeHTTP(w, authenticated(r, ownerID))
				return
			}

			if store == nil {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ownerID, err := sessionOwner(session)
			if err != nil {
				log.WarnContext(r.Context(), "session without owner", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			next.ServeHTTP(w, authenticated(r, ownerID))
		})
	}
}

// authenticated stores ownerID on the request context and tags every log
// record written under it.
func authenticated(r *http.Request, ownerID uuid.UUID) *http.Request {
	ctx := logger.ContextWith(WithOwnerID(r.Context(), ownerID), "owner_id", ownerID.String())
	return r.WithContext(ctx)
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
