package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

const (
	fieldRequestID = "request_id"
	fieldService   = "service"
)
