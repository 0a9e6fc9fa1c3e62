package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. CIPHER_LAB_PORT or CIPHER_LAB_DATABASE_DSN.
const EnvPrefix = "CIPHER_LAB"

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port           string           `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins []string         `mapstructure:"allowed_origins" validate:"required,min=1"`
	Logger         LoggerSettings   `mapstructure:"logger"`
	Database       DatabaseSettings `mapstructure:"database"`
}

// Validate checks the REST settings and the nested logger and database settings
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return c.Database.Validate()
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var restConfig RestConfig
	if err := v.Unmarshal(&restConfig); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := restConfig.Validate(); err != nil {
		return nil, err
	}

	return &restConfig, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("logger.compress", true)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "cipher-lab.db")
	v.SetDefault("database.name", "cipher_lab")
}
