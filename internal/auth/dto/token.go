package dto

// TokenResponse is the login payload. Field names are part of the SPA
// contract.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessTokenResponse is the refresh payload: a new access token only, the
// refresh token stays as issued.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
