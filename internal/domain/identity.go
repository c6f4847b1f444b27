package domain

// Identity is the capability object produced by the session guard once a
// bearer token has been verified and resolved. Handlers receive it through
// the request context instead of re-deriving the user themselves.
type Identity struct {
	User *User
	// Token is the exact bearer token string the request presented.
	// Logout needs it to revoke the token verbatim.
	Token string
}
