package auth

// TokenParser resolves a bearer token to the operator it was issued for.
// Tokens that are malformed, forged or expired yield ErrInvalidToken.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// Strategy issues bearer tokens for operators and resolves them back.
type Strategy interface {
	TokenParser
	IssueToken(operatorID int64) (string, error)
	Name() string
}
