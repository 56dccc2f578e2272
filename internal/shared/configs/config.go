package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Analysis    AnalysisConfig    `mapstructure:"analysis" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// AnalysisConfig holds analysis configuration.
type AnalysisConfig struct {
	// DefaultFormat is the log format assumed when an upload carries no
	// x-log-format header.
	DefaultFormat string `mapstructure:"default_format" validate:"required,oneof=simple combined"`
	// TopUserAgents caps the user-agent breakdown in combined-format reports.
	TopUserAgents int `mapstructure:"top_user_agents" validate:"required,min=1,max=100"`
	// QueuePartitions sets the number of partitions of the in-process
	// analysis queue. One worker goroutine runs per partition.
	QueuePartitions int `mapstructure:"queue_partitions" validate:"required,min=1,max=64"`
}
