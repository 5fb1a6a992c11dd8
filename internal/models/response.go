package models

// AuthResponse is returned by signUp and signIn.
type AuthResponse struct {
	Token  string  `json:"token"`
	Player *Player `json:"player"`
}

// RankingResponse wraps the leaderboard projection.
type RankingResponse struct {
	Total   int      `json:"total"`
	Players []Player `json:"players"`
}

// ErrorResponse is the uniform error envelope for HTTP responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
