package constants

// Session store fields. These three keys are the entire persisted contract
// for one browser session.
const (
	FieldAuthToken    = "authToken"
	FieldUser         = "user"
	FieldPendingEmail = "pendingEmail"
)

// SessionKeyFormat is the Redis key layout: session:{sid}:{field}
const SessionKeyFormat = "session:%s:%s"
