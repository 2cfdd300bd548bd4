package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCommand carries the wire name of the command being processed.
	FieldCommand = "command"
	// FieldRequestID correlates an IPC request with its reply.
	FieldRequestID = "request_id"
	// FieldState names a start-protocol state.
	FieldState = "state"
	// FieldPID is the process identifier of a spawned service.
	FieldPID = "pid"
	// FieldPath is a filesystem path such as a resolved binary or lock file.
	FieldPath = "path"
	// FieldSocket is the IPC socket path.
	FieldSocket = "socket"
	// FieldError carries an error value.
	FieldError = "error"
)
