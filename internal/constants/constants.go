package constants

// Session
const (
	SessionCookieName = "workflow_session"
	ContextKeyUserID  = "user_id"
	SessionMaxAge     = 86400 * 7 // 7 days
)

// Validation limits
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// Storage backend names accepted by STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
)
