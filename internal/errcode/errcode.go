package errcode

// Error code convention:
// - 4xxx: recoverable/warning conditions (flow continues, client informed)
// - 5xxx: system errors (flow aborts)
const (
	PhotoInvalid    = 4002
	ResourceMissing = 4004
	SystemError     = 5000
)
