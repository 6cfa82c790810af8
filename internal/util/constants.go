package util

const (
	// DefaultUsername is the participant label used when a quiz is started
	// without one.
	DefaultUsername = "Anonymous"

	// SessionCookieName carries the opaque session identifier.
	SessionCookieName = "solo_quiz_session"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)
