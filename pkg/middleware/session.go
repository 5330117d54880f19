package middleware

import (
	"net/http"

	"cinema-checkout/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	checkoutTokenHeader = "X-Checkout-Token"
	checkoutTokenCookie = "checkout_token"
)

// CheckoutSession resolves the session token that keys this caller's draft.
// The token arrives via header or cookie; first-time callers get a fresh
// one, echoed back on both so browser and API clients can hold onto it.
// The token identifies a checkout session, not a user - identity is a
// separate concern handled upstream.
func CheckoutSession(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(checkoutTokenHeader)

			if token == "" {
				if cookie, err := r.Cookie(checkoutTokenCookie); err == nil {
					token = cookie.Value
				}
			}

			// Reject garbage tokens instead of keying drafts on them
			if token != "" {
				if _, err := uuid.Parse(token); err != nil {
					logger.Warn("Malformed checkout token, issuing a new one",
						zap.String("token", token))
					token = ""
				}
			}

			if token == "" {
				token = utils.GenerateCheckoutToken()
			}

			w.Header().Set(checkoutTokenHeader, token)
			http.SetCookie(w, &http.Cookie{
				Name:     checkoutTokenCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := utils.SetCheckoutTokenContext(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
