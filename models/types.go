package models

import "time"

// Poll status constants
const (
	StatusActive = "active"
	StatusClosed = "closed"
	StatusDraft  = "draft"
)

// Error code constants returned in ErrorResponse.Code
const (
	CodeValidation    = "validation"
	CodeNotFound      = "not_found"
	CodeForbidden     = "forbidden"
	CodeDuplicateVote = "duplicate_vote"
	CodePollClosed    = "poll_closed"
	CodeInvalidOption = "invalid_option"
	CodeStorage       = "storage"
)

// Request types

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Options     []string   `json:"options"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// UpdatePollRequest is a partial update: nil fields are left unchanged.
type UpdatePollRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type PollDetailResponse struct {
	Poll     Poll  `json:"poll"`
	UserVote *Vote `json:"user_vote,omitempty"`
}

type CastVoteResponse struct {
	Vote Vote `json:"vote"`
	Poll Poll `json:"poll"`
}

type DeletePollResponse struct {
	Deleted bool `json:"deleted"`
}

// OwnerStats summarizes all polls created by one user.
type OwnerStats struct {
	TotalPolls   int `json:"total_polls"`
	TotalVotes   int `json:"total_votes"`
	ActivePolls  int `json:"active_polls"`
	AverageVotes int `json:"average_votes"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CredHash  string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

type Poll struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Options     []PollOption `json:"options"`
	TotalVotes  int          `json:"total_votes"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
}

type PollOption struct {
	ID     string `json:"id"`
	PollID string `json:"poll_id"`
	Text   string `json:"text"`
	Votes  int    `json:"votes"`
}

type Vote struct {
	ID            string    `json:"id"`
	PollID        string    `json:"poll_id"`
	OptionID      string    `json:"option_id"`
	VoterIdentity string    `json:"-"` // Never expose in JSON
	VotedAt       time.Time `json:"voted_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
