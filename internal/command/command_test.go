package command_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"symphony/internal/command"
)

func allVariants() []command.Command {
	return []command.Command{
		command.StartService{Daemonize: true},
		command.StopService{},
		command.Status{},
		command.ListModels{},
		command.LoadModel{ModelName: "llama", ConfigPath: command.Optional("/etc/llama.toml")},
		command.UnloadModel{ModelName: "llama"},
		command.InstallModel{ModelName: "meta-llama/Llama-3.1-8B-Instruct", LocalName: command.Optional("llama"), Force: true},
		command.UninstallModel{ModelName: "llama", Force: true},
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := map[command.Name]bool{}
	for _, cmd := range allVariants() {
		if seen[cmd.Name()] {
			t.Fatalf("duplicate name %q", cmd.Name())
		}
		seen[cmd.Name()] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 variants, got %d", len(seen))
	}
}

func TestArgsOmitAbsentOptionals(t *testing.T) {
	tests := []struct {
		name string
		cmd  command.Command
		want map[string]any
	}{
		{
			name: "load without config",
			cmd:  command.LoadModel{ModelName: "m"},
			want: map[string]any{"model_name": "m"},
		},
		{
			name: "load with config",
			cmd:  command.LoadModel{ModelName: "m", ConfigPath: command.Optional("c.toml")},
			want: map[string]any{"model_name": "m", "config_path": "c.toml"},
		},
		{
			name: "install without local name",
			cmd:  command.InstallModel{ModelName: "org/m"},
			want: map[string]any{"model_name": "org/m", "force": false},
		},
		{
			name: "install with local name",
			cmd:  command.InstallModel{ModelName: "org/m", LocalName: command.Optional("m"), Force: true},
			want: map[string]any{"model_name": "org/m", "local_name": "m", "force": true},
		},
		{
			name: "uninstall",
			cmd:  command.UninstallModel{ModelName: "m"},
			want: map[string]any{"model_name": "m", "force": false},
		},
		{
			name: "status",
			cmd:  command.Status{},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Args(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateRequiresModelName(t *testing.T) {
	invalid := []command.Command{
		command.LoadModel{ModelName: "  "},
		command.UnloadModel{},
		command.InstallModel{},
		command.UninstallModel{ModelName: "\t"},
	}
	for _, cmd := range invalid {
		if err := cmd.Validate(); !errors.Is(err, command.ErrInvalidCommand) {
			t.Fatalf("%s: expected ErrInvalidCommand, got %v", cmd.Name(), err)
		}
	}
	for _, cmd := range allVariants() {
		if err := cmd.Validate(); err != nil {
			t.Fatalf("%s: unexpected validation error: %v", cmd.Name(), err)
		}
	}
}

func TestOptional(t *testing.T) {
	if command.Optional("") != nil {
		t.Fatal("expected nil for empty value")
	}
	if got := command.Optional("x"); got == nil || *got != "x" {
		t.Fatalf("unexpected optional: %v", got)
	}
}

func TestRequestDecodeRestoresCommand(t *testing.T) {
	for _, cmd := range allVariants() {
		t.Run(string(cmd.Name()), func(t *testing.T) {
			req := command.NewRequest(cmd, true, "rid")
			if req.Command != cmd.Name() || !req.JSON || req.RequestID != "rid" {
				t.Fatalf("unexpected envelope: %+v", req)
			}

			// Round trip through JSON the way the transport does.
			raw, err := json.Marshal(req)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var decoded command.Request
			if err := json.Unmarshal(raw, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got, err := decoded.Decode()
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got, cmd) {
				t.Fatalf("Decode() = %#v, want %#v", got, cmd)
			}
		})
	}
}

func TestRequestDecodeRejectsUnknownCommand(t *testing.T) {
	_, err := command.Request{Command: "reboot"}.Decode()
	if !errors.Is(err, command.ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}
