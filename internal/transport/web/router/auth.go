package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

const (
	auth0TokenPrefix = "Bearer auth0|"
	devUserHeader    = "X-Dev-User-ID"
)

// AuthResult identifies the shopper a request was authenticated as.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator checks one kind of credential on a request.
// A validator that finds no credential of its kind returns nil, nil; one that finds an
// unusable credential returns an error.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware stores the first matching validator's shopper in the request context.
// Requests without credentials pass through anonymously; endpoints needing a shopper wrap requireAuthMiddleware.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := authenticate(r, validators)
			if err != nil {
				logger := domain.LoggerFromContext(r.Context())
				logger.WarnContext(r.Context(), "authentication failed", "error", err)
				writeUnauthorized(w, err)
				return
			}
			if result == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := domain.ContextWithUserID(r.Context(), result.UserID)
			ctx = domain.ContextWithAuthMethod(ctx, result.Method)
			ctx = domain.ContextWithLogAttrs(ctx, "user_id", result.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate returns the outcome of the first validator that recognises a credential.
func authenticate(r *http.Request, validators []AuthValidator) (*AuthResult, error) {
	for _, validate := range validators {
		result, err := validate(r)
		if result != nil || err != nil {
			return result, err
		}
	}
	return nil, nil
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = fmt.Fprintf(w, `{"message":%q}`, err.Error())
}

// bearerToken returns the Authorization header with prefix removed, if it carries that prefix.
func bearerToken(r *http.Request, prefix string) (string, bool) {
	return strings.CutPrefix(r.Header.Get("Authorization"), prefix)
}

// NewAuth0Validator accepts RS256 access tokens issued by the given Auth0 tenant for the audience.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	keys := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		keys.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		raw, ok := bearerToken(r, auth0TokenPrefix)
		if !ok {
			return nil, nil
		}

		validated, err := jwtValidator.ValidateToken(r.Context(), raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims, ok := validated.(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			return nil, fmt.Errorf("JWT token has no subject")
		}
		return &AuthResult{UserID: claims.RegisteredClaims.Subject, Method: domain.AuthMethodAuth0}, nil
	}, nil
}

// NewDevHeaderValidator trusts the user ID in the X-Dev-User-ID header. Only for local development.
func NewDevHeaderValidator() AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		values, ok := r.Header[http.CanonicalHeaderKey(devUserHeader)]
		if !ok {
			return nil, nil
		}

		userID := ""
		if len(values) > 0 {
			userID = strings.TrimSpace(values[0])
		}
		if userID == "" {
			return nil, fmt.Errorf("empty %s header", devUserHeader)
		}
		return &AuthResult{UserID: userID, Method: domain.AuthMethodDevHeader}, nil
	}
}
