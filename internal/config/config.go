package config

import (
	"errors"
	"strings"

	"github.com/billfold/billfold/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Logging LoggingConfig `validate:"required"`
	Storage StorageConfig `validate:"required"`
	Billing BillingConfig `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type StorageConfig struct {
	// Mode selects the key-value backend; file mode is the durable default
	Mode types.StorageMode `validate:"required,oneof=file memory"`
	// Dir is the directory holding the persisted collection in file mode
	Dir string
	// SeedSampleData populates example bills on first run
	SeedSampleData bool
}

type BillingConfig struct {
	// BillNumberPrefix is the human-readable prefix of generated bill numbers
	BillNumberPrefix string `validate:"required"`
	// DueDateDays is the default due-date offset from the bill date
	DueDateDays int `validate:"required,min=1"`
}

func NewConfig() (*Configuration, error) {
	// Load .env if present; ignored when absent
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.billfold")

	v.SetEnvPrefix("BILLFOLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("storage.mode", string(types.StorageModeFile))
	v.SetDefault("storage.dir", ".billfold")
	v.SetDefault("storage.seedsampledata", true)
	v.SetDefault("billing.billnumberprefix", "INV")
	v.SetDefault("billing.duedatedays", 30)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for tests and scripts:
// in-memory storage, no sample data, debug logging.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Storage: StorageConfig{
			Mode:           types.StorageModeMemory,
			SeedSampleData: false,
		},
		Billing: BillingConfig{
			BillNumberPrefix: "INV",
			DueDateDays:      30,
		},
	}
}
