package httpc

// LogFlags bits. Errors are logged unless a NoLog* bit says otherwise.
const (
	LogRequest         = 1
	LogResponse        = 2
	NoLogError         = 4
	NoLogNotAuthorized = 8
	NoLogBadStatus     = 16
)
