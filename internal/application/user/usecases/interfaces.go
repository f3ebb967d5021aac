package usecases

// TokenIssuer mints and verifies session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, role string) (token string, expiresIn int64, err error)
	IssueRefresh(userID uint, role string) (string, error)
	VerifyRefresh(token string) (userID uint, err error)
}
