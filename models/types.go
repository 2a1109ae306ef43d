package models

// Request types

type CreatePollRequest struct {
	Question string                `json:"question"`
	Options  []CreateOptionRequest `json:"options"`
}

type CreateOptionRequest struct {
	Label string `json:"label"`
}

type VoteRequest struct {
	OptionID int `json:"optionId"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type NegotiateResponse struct {
	URL         string `json:"url"`
	AccessToken string `json:"accessToken"`
}

type VoteResponse struct {
	PollID   int `json:"pollId"`
	OptionID int `json:"optionId"`
	Votes    int `json:"votes"`
}

// Domain types

type Poll struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
}

type PollOption struct {
	ID     int    `json:"id"`
	PollID int    `json:"pollId"`
	Label  string `json:"label"`
	Votes  int    `json:"votes"`
}

// VoteEvent is the realtime payload pushed to subscribers after a
// successful vote. Arguments keep the (pollId, optionId, votes) order
// that clients depend on.
type VoteEvent struct {
	Channel   string `json:"channel"`
	Event     string `json:"event"`
	Arguments [3]int `json:"arguments"`
}

// Realtime channel and event names
const (
	ChannelPolls = "polls"
	EventNewVote = "newVote"
)

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
