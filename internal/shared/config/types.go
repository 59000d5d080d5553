package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host" yaml:"host"`
	Port           int      `mapstructure:"port" yaml:"port"`
	Mode           string   `mapstructure:"mode" yaml:"mode"`
	BaseURL        string   `mapstructure:"base_url" yaml:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone" yaml:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" yaml:"driver"`
	Path            string `mapstructure:"path" yaml:"path"`
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port"`
	Username        string `mapstructure:"username" yaml:"username"`
	Password        string `mapstructure:"password" yaml:"password"`
	Database        string `mapstructure:"database" yaml:"database"`
	SSLMode         string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// GetDSN returns the connection string for the configured driver.
func (d *DatabaseConfig) GetDSN() string {
	switch strings.ToLower(d.Driver) {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	case DriverPostgres:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	default:
		if d.Path == "" {
			return "tickets.db"
		}
		return d.Path
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

// StorageConfig controls where uploaded voice notes live and what is accepted.
type StorageConfig struct {
	UploadDir           string   `mapstructure:"upload_dir" yaml:"upload_dir"`
	PublicPrefix        string   `mapstructure:"public_prefix" yaml:"public_prefix"`
	MaxFileSize         int64    `mapstructure:"max_file_size" yaml:"max_file_size"`
	AllowedContentTypes []string `mapstructure:"allowed_content_types" yaml:"allowed_content_types"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	UploadPerMinute int `mapstructure:"upload_per_minute" yaml:"upload_per_minute"`
}

// DefaultUserConfig identifies the implicit owner used while authentication is absent.
type DefaultUserConfig struct {
	Email    string `mapstructure:"email" yaml:"email"`
	Username string `mapstructure:"username" yaml:"username"`
}
