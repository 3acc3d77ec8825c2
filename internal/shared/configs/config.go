package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Store    StoreConfig    `mapstructure:"store" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Kafka    KafkaConfig    `mapstructure:"kafka" validate:"required"`
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

// StoreConfig selects and configures the tip aggregate store backend.
// The memory backend is for local development; it holds the same atomicity
// contract but does not survive restarts.
type StoreConfig struct {
	Backend string      `mapstructure:"backend" validate:"required,oneof=redis memory"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// DatabaseConfig holds the driver repository database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// KafkaConfig holds the inbound tip event consumer configuration.
type KafkaConfig struct {
	Brokers    []string `mapstructure:"brokers" validate:"required,min=1"`
	Topic      string   `mapstructure:"topic" validate:"required"`
	GroupID    string   `mapstructure:"group_id" validate:"required"`
	RetryTopic string   `mapstructure:"retry_topic" validate:"required"`
	BatchSize  int      `mapstructure:"batch_size" validate:"required,min=1,max=100"`
	BatchWait  int      `mapstructure:"batch_wait" validate:"required,min=1"` // seconds to wait filling a batch
}
