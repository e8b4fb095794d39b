package models

// SignupRequest is the payload for user registration.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token plus a wallet-aware user summary.
type LoginResponse struct {
	Token string       `json:"token"`
	User  LoginUser    `json:"user"`
}

// LoginUser is the user summary returned on login. The wallet secret key is
// deliberately absent.
type LoginUser struct {
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Tokens             float64 `json:"tokens"`
	WalletPublicKey    string  `json:"walletPublicKey,omitempty"`
	WalletFunded       bool    `json:"walletFunded"`
	WalletHasTrustline bool    `json:"walletHasTrustline"`
}
