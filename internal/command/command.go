package command

import (
	"errors"
	"fmt"
	"strings"
)

// Name is the stable wire identifier of a command variant.
type Name string

const (
	NameStartService   Name = "start_service"
	NameStopService    Name = "stop_service"
	NameStatus         Name = "status"
	NameListModels     Name = "list_models"
	NameLoadModel      Name = "load_model"
	NameUnloadModel    Name = "unload_model"
	NameInstallModel   Name = "install_model"
	NameUninstallModel Name = "uninstall_model"
)

// ErrInvalidCommand reports a command whose required fields are missing.
var ErrInvalidCommand = errors.New("invalid command")

// Command is one administrative intent. Implementations live in this package only.
type Command interface {
	Name() Name
	// Args returns the variant's fields keyed by wire name. Absent optional
	// fields are omitted.
	Args() map[string]any
	Validate() error
	sealed()
}

// StartService launches the management service unless it already answers.
type StartService struct {
	Daemonize bool
}

// StopService asks the running service to shut down.
type StopService struct{}

// Status asks the running service for its state. It doubles as the
// reachability probe of the start protocol.
type Status struct{}

// ListModels asks for the models known to the service.
type ListModels struct{}

// LoadModel loads a model, optionally from an explicit config file.
type LoadModel struct {
	ModelName  string
	ConfigPath *string
}

// UnloadModel unloads a loaded model.
type UnloadModel struct {
	ModelName string
}

// InstallModel installs a model from the hub. LocalName defaults on the
// service side to the last path segment of ModelName.
type InstallModel struct {
	ModelName string
	LocalName *string
	Force     bool
}

// UninstallModel removes a model from local storage.
type UninstallModel struct {
	ModelName string
	Force     bool
}

func (StartService) Name() Name   { return NameStartService }
func (StopService) Name() Name    { return NameStopService }
func (Status) Name() Name         { return NameStatus }
func (ListModels) Name() Name     { return NameListModels }
func (LoadModel) Name() Name      { return NameLoadModel }
func (UnloadModel) Name() Name    { return NameUnloadModel }
func (InstallModel) Name() Name   { return NameInstallModel }
func (UninstallModel) Name() Name { return NameUninstallModel }

func (c StartService) Args() map[string]any {
	return map[string]any{"daemonize": c.Daemonize}
}

func (StopService) Args() map[string]any { return map[string]any{} }
func (Status) Args() map[string]any      { return map[string]any{} }
func (ListModels) Args() map[string]any  { return map[string]any{} }

func (c LoadModel) Args() map[string]any {
	args := map[string]any{"model_name": c.ModelName}
	if c.ConfigPath != nil {
		args["config_path"] = *c.ConfigPath
	}
	return args
}

func (c UnloadModel) Args() map[string]any {
	return map[string]any{"model_name": c.ModelName}
}

func (c InstallModel) Args() map[string]any {
	args := map[string]any{"model_name": c.ModelName, "force": c.Force}
	if c.LocalName != nil {
		args["local_name"] = *c.LocalName
	}
	return args
}

func (c UninstallModel) Args() map[string]any {
	return map[string]any{"model_name": c.ModelName, "force": c.Force}
}

func (StartService) Validate() error { return nil }
func (StopService) Validate() error  { return nil }
func (Status) Validate() error       { return nil }
func (ListModels) Validate() error   { return nil }

func (c LoadModel) Validate() error      { return requireModelName(c.Name(), c.ModelName) }
func (c UnloadModel) Validate() error    { return requireModelName(c.Name(), c.ModelName) }
func (c InstallModel) Validate() error   { return requireModelName(c.Name(), c.ModelName) }
func (c UninstallModel) Validate() error { return requireModelName(c.Name(), c.ModelName) }

func (StartService) sealed()   {}
func (StopService) sealed()    {}
func (Status) sealed()         {}
func (ListModels) sealed()     {}
func (LoadModel) sealed()      {}
func (UnloadModel) sealed()    {}
func (InstallModel) sealed()   {}
func (UninstallModel) sealed() {}

func requireModelName(name Name, model string) error {
	if strings.TrimSpace(model) == "" {
		return fmt.Errorf("%w: %s requires a model name", ErrInvalidCommand, name)
	}
	return nil
}

// Optional returns a pointer to value, or nil when value is empty. It maps an
// unset CLI flag to an absent optional field.
func Optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
