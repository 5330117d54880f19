package utils

import (
	"context"
)

type contextKey string

const (
	// CheckoutTokenKey carries the session token that keys the draft store.
	CheckoutTokenKey contextKey = "checkout_token"
)

func GetCheckoutTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(CheckoutTokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	if !ok || token == "" {
		return "", false
	}

	return token, true
}

func SetCheckoutTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CheckoutTokenKey, token)
}
