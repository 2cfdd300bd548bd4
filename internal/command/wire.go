package command

import (
	"encoding/json"
	"fmt"
)

// Request is the wire envelope sent to the management service.
type Request struct {
	Command   Name           `json:"command"`
	Args      map[string]any `json:"args"`
	JSON      bool           `json:"json"`
	RequestID string         `json:"request_id"`
}

// Reply is the service's answer. Exactly one of Payload or Error is meaningful,
// selected by OK.
type Reply struct {
	OK      bool   `json:"ok"`
	Payload string `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewRequest wraps cmd in a wire envelope.
func NewRequest(cmd Command, structured bool, requestID string) Request {
	return Request{
		Command:   cmd.Name(),
		Args:      cmd.Args(),
		JSON:      structured,
		RequestID: requestID,
	}
}

// Decode rebuilds the command carried by a request. It is the inverse of
// NewRequest and is used by service-side handlers.
func (r Request) Decode() (Command, error) {
	raw, err := json.Marshal(r.Args)
	if err != nil {
		return nil, fmt.Errorf("encode args: %w", err)
	}
	var args struct {
		Daemonize  bool    `json:"daemonize"`
		ModelName  string  `json:"model_name"`
		ConfigPath *string `json:"config_path"`
		LocalName  *string `json:"local_name"`
		Force      bool    `json:"force"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode %s args: %w", r.Command, err)
	}

	var cmd Command
	switch r.Command {
	case NameStartService:
		cmd = StartService{Daemonize: args.Daemonize}
	case NameStopService:
		cmd = StopService{}
	case NameStatus:
		cmd = Status{}
	case NameListModels:
		cmd = ListModels{}
	case NameLoadModel:
		cmd = LoadModel{ModelName: args.ModelName, ConfigPath: args.ConfigPath}
	case NameUnloadModel:
		cmd = UnloadModel{ModelName: args.ModelName}
	case NameInstallModel:
		cmd = InstallModel{ModelName: args.ModelName, LocalName: args.LocalName, Force: args.Force}
	case NameUninstallModel:
		cmd = UninstallModel{ModelName: args.ModelName, Force: args.Force}
	default:
		return nil, fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, r.Command)
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}
