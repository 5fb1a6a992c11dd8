package models

// SignUpRequest carries the signup payload after body parsing.
type SignUpRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Age            int    `json:"age"`
	Sex            string `json:"sex"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RecordMatchRequest carries a reported match result.
type RecordMatchRequest struct {
	Date     string `json:"date"`
	WinnerID string `json:"winnerId"`
	LoserID  string `json:"loserId"`
	Result   []int  `json:"result"`
}
