package middleware

import (
	"context"
	"net/http"

	"github.com/gatherly/server/internal/api/apierr"
	"github.com/gatherly/server/internal/domain/users"
)

const callerKey contextKey = "caller"

// Identity parses the gateway identity header once per request and stores
// the typed caller in the context. Handlers behind it never re-parse the
// header. Requests without a usable identity are rejected before reaching
// the handler.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := users.ParseIdentity(r.Header.Get(users.IdentityHeader))
			if err != nil {
				apierr.Write(w, r, apierr.New(apierr.KindUnauthorized, err))
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithCaller(r.Context(), caller)))
		})
	}
}

// ContextWithCaller attaches the caller to a context (exported for tests)
func ContextWithCaller(ctx context.Context, caller *users.User) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext retrieves the caller stored by Identity, or nil.
func CallerFromContext(ctx context.Context) *users.User {
	if ctx == nil {
		return nil
	}
	if caller, ok := ctx.Value(callerKey).(*users.User); ok {
		return caller
	}
	return nil
}
