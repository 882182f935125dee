package dto

import "github.com/google/uuid"

// PublishInterviewCompletedMessage is the payload published when a session
// reaches its final evaluation. Consumers re-read the session; the payload
// carries identity only.
type PublishInterviewCompletedMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	UserId    uuid.UUID `json:"user_id"`
}
