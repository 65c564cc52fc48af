package domain

import "context"

// AuthMethod records how a request was authenticated.
type AuthMethod string

const (
	AuthMethodAuth0     AuthMethod = "auth0"
	AuthMethodDevHeader AuthMethod = "dev_header"
)

const authMethodContextKey contextKey = "auth_method"

func ContextWithAuthMethod(ctx context.Context, method AuthMethod) context.Context {
	return context.WithValue(ctx, authMethodContextKey, method)
}

func AuthMethodFromContext(ctx context.Context) AuthMethod {
	method, _ := ctx.Value(authMethodContextKey).(AuthMethod)
	return method
}
