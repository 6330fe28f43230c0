package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/inventory/internal/config"
)

// Module provides the password hasher and the token strategy. The strategy
// is also exposed as TokenParser for request authentication.
var Module = fx.Provide(
	newPasswordHasher,
	newTokenStrategy,
	func(s Strategy) TokenParser { return s },
)

func newPasswordHasher(cfg *config.Config) PasswordHasher {
	return NewBcryptHasher(cfg.PasswordCost)
}

func newTokenStrategy(cfg *config.Config) Strategy {
	return NewHMACStrategy(cfg.JWTSecret, Options{TTL: cfg.TokenTTL})
}
