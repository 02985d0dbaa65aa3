package mid

import (
	"context"
	"net/http"
	"strings"

	"github.com/taskvault/taskvault/bridge/scaffolding/errs"
	"github.com/taskvault/taskvault/core/auth"
	"github.com/taskvault/taskvault/infrastructure/web"
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (auth.Claims, error)
}

// Authenticate rejects requests without a bearer token with 401 and requests
// whose token fails verification with 403. On success the claims are stored
// in the context for GetUserID and GetClaims.
func Authenticate(verifier TokenVerifier) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				return errs.Newf(errs.Unauthenticated, "Access denied. No token provided.")
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				return errs.Newf(errs.PermissionDenied, "Invalid or expired token.")
			}

			ctx = setClaims(ctx, claims)

			return next(ctx, r.WithContext(ctx))
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
