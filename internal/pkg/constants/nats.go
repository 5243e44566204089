package constants

// NATS subjects for session lifecycle audit events
const (
	SubjectSessionLogin  = "session.login"
	SubjectSessionLogout = "session.logout"
)
