package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/ticketdesk/ticketdesk/internal/shared/config"
	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
)

const envPrefix = "TICKETDESK"

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server" yaml:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database" yaml:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger" yaml:"logger"`
	Storage     sharedConfig.StorageConfig     `mapstructure:"storage" yaml:"storage"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis" yaml:"redis"`
	RateLimit   sharedConfig.RateLimitConfig   `mapstructure:"ratelimit" yaml:"ratelimit"`
	DefaultUser sharedConfig.DefaultUserConfig `mapstructure:"default_user" yaml:"default_user"`
}

// Options selects where configuration is read from.
type Options struct {
	// Env overrides server.mode unless empty or "default".
	Env string
	// ConfigFile is an explicit path; when empty the standard configs
	// directories are searched and a missing file is not an error.
	ConfigFile string
	// DotEnv files loaded before the environment is read. Defaults to ".env".
	DotEnv []string
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(opts Options) (*Config, error) {
	loadDotEnv(opts.DotEnv)

	v := viper.New()
	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !stderrors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.Env != "" && opts.Env != "default" {
		v.Set("server.mode", opts.Env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Database.Driver) {
	case sharedConfig.DriverSQLite, sharedConfig.DriverMySQL, sharedConfig.DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("storage.max_file_size must be positive")
	}
	if c.Storage.UploadDir == "" {
		return fmt.Errorf("storage.upload_dir is required")
	}
	return nil
}

// Masked returns a copy safe to print, with credentials replaced.
func (c Config) Masked() Config {
	const mask = "******"
	if c.Database.Password != "" {
		c.Database.Password = mask
	}
	if c.Redis.Password != "" {
		c.Redis.Password = mask
	}
	return c
}

func loadDotEnv(files []string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// Variables already present in the environment win.
		_ = godotenv.Load(f)
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.timezone", "UTC")

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverSQLite)
	v.SetDefault("database.path", "tickets.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "ticketdesk")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Storage defaults
	v.SetDefault("storage.upload_dir", constants.DefaultUploadDir)
	v.SetDefault("storage.public_prefix", constants.DefaultPublicPrefix)
	v.SetDefault("storage.max_file_size", constants.DefaultMaxFileSize)
	v.SetDefault("storage.allowed_content_types", constants.DefaultAllowedContentTypes)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ratelimit.upload_per_minute", 30)

	v.SetDefault("default_user.email", constants.DefaultUserEmail)
	v.SetDefault("default_user.username", constants.DefaultUserUsername)
}
