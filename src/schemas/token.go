package schemas

// TokenRequest carries login credentials. Verification happens server side;
// no credential list ever reaches a client.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// UserProfile is the session profile stored server side and exposed to the
// view layer. Role drives conditional behavior only; no report depends on it.
type UserProfile struct {
	UserID     uint   `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}
