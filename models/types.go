package models

import "time"

// Poll status constants
const (
	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Voting method constants
const (
	MethodIRV = "irv"
)

// Device role constants
const (
	RoleVoter = "voter"
	RoleAdmin = "admin"
)

// Device platform constants
const (
	PlatformIOS     = "ios"
	PlatformMacOS   = "macos"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Request types

type CreatePollRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatorName string `json:"creator_name"`
}

type AddOptionRequest struct {
	Label string `json:"label"`
}

type ClaimUsernameRequest struct {
	Username string `json:"username"`
}

// ranking[i] is the rank (1 = top choice) the voter gives the option with
// ordinal i. A valid ranking is a permutation of 1..N for a poll with N
// options.
type SubmitBallotRequest struct {
	Ranking []int `json:"ranking"`
}

type RegisterDeviceRequest struct {
	Platform string `json:"platform"`
}

// Response types

type CreatePollResponse struct {
	PollID   string `json:"poll_id"`
	AdminKey string `json:"admin_key"`
}

type AddOptionResponse struct {
	OptionID string `json:"option_id"`
	Ordinal  int    `json:"ordinal"`
}

type PublishPollResponse struct {
	ShareSlug string `json:"share_slug"`
	ShareURL  string `json:"share_url"`
}

type ClaimUsernameResponse struct {
	VoterToken string `json:"voter_token"`
}

type SubmitBallotResponse struct {
	BallotID string `json:"ballot_id"`
	Message  string `json:"message"`
}

type MyBallotResponse struct {
	Ranking     []int     `json:"ranking"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ClosePollResponse struct {
	ClosedAt time.Time      `json:"closed_at"`
	Snapshot ResultSnapshot `json:"snapshot"`
}

type PollPreviewResponse struct {
	Title       string `json:"title"`
	Status      string `json:"status"`
	OptionCount int    `json:"option_count"`
	BallotCount int    `json:"ballot_count"`
	ClosedAgo   string `json:"closed_ago,omitempty"`
}

type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"`
	IsNew    bool   `json:"is_new"`
}

type GetMyPollsResponse struct {
	Polls []DevicePollSummary `json:"polls"`
}

// Domain types

type Poll struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	CreatorName     string     `json:"creator_name"`
	Method          string     `json:"method"`
	Status          string     `json:"status"`
	ShareSlug       *string    `json:"share_slug,omitempty"`
	ClosesAt        *time.Time `json:"closes_at,omitempty"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
	FinalSnapshotID *string    `json:"final_snapshot_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Option struct {
	ID      string `json:"id"`
	PollID  string `json:"poll_id"`
	Ordinal int    `json:"ordinal"`
	Label   string `json:"label"`
}

type PollWithOptions struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
}

type Ballot struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	VoterToken  string    `json:"-"` // Never expose in JSON
	SubmittedAt time.Time `json:"submitted_at"`
	IPHash      *string   `json:"-"` // Never expose in JSON
	UserAgent   *string   `json:"-"` // Never expose in JSON
}

type Ranking struct {
	BallotID string `json:"ballot_id"`
	OptionID string `json:"option_id"`
	Rank     int    `json:"rank"`
}

type DeviceInfo struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

type DevicePollSummary struct {
	PollID      string    `json:"poll_id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	ShareSlug   *string   `json:"share_slug,omitempty"`
	Role        string    `json:"role"`
	Username    *string   `json:"username,omitempty"`
	LinkedAt    time.Time `json:"linked_at"`
	LinkedAgo   string    `json:"linked_ago"`
	BallotCount int       `json:"ballot_count"`
}

// IRV result types

// WinnerOption names one winning option. A single entry is an outright
// winner; multiple entries mean the remaining options tied.
type WinnerOption struct {
	OptionID string `json:"option_id"`
	Label    string `json:"label"`
}

// TallyRound is one elimination round: the option knocked out and the vote
// count per surviving option after its ballots were redistributed.
type TallyRound struct {
	Eliminated string         `json:"eliminated"`
	Tallies    map[string]int `json:"tallies"`
}

// IRVResult is the computed outcome sealed into a result snapshot.
type IRVResult struct {
	Winners    []WinnerOption `json:"winners"`
	Rounds     []TallyRound   `json:"rounds"`
	InputsHash string         `json:"inputs_hash"`
}

type ResultSnapshot struct {
	ID         string         `json:"id"`
	PollID     string         `json:"poll_id"`
	Method     string         `json:"method"`
	ComputedAt time.Time      `json:"computed_at"`
	Winners    []WinnerOption `json:"winners"`
	Rounds     []TallyRound   `json:"rounds"`
	InputsHash string         `json:"inputs_hash"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
