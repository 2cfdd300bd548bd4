package config

const (
	defaultSocketPath         = "~/.local/share/symphony/symphony.sock"
	defaultDialTimeoutSeconds = 2
	defaultBinaryName         = "symphony-management-service"
	defaultFallbackPath       = "./target/release/symphony-management-service"
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
	localConfigName           = "symphony.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		IPC: IPC{
			SocketPath:         defaultSocketPath,
			DialTimeoutSeconds: defaultDialTimeoutSeconds,
		},
		Service: Service{
			BinaryName:   defaultBinaryName,
			FallbackPath: defaultFallbackPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
