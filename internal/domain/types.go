package domain

// SessionStatus is the gateway's authentication state.
type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"
	SessionLoading SessionStatus = "loading"
	SessionSuccess SessionStatus = "success"
	SessionError   SessionStatus = "error"
)
