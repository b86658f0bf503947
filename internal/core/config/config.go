package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// RequestTimeoutSeconds bounds the work done for one inbound request. Zero means unbounded.
	RequestTimeoutSeconds int `mapstructure:"REQUEST_TIMEOUT_SECONDS" default:"30"`
	// PublicBaseURL is the storefront origin used to build customer-facing redirect URLs.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL" default:"http://localhost:3000"`

	// Storefront holds the remote storefront API configuration.
	Storefront StorefrontConfig `mapstructure:",squash"`

	// Redis holds the cache connection configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Checkout holds checkout session settings.
	Checkout CheckoutConfig `mapstructure:",squash"`

	// Esewa holds the eSewa gateway settings.
	Esewa EsewaConfig `mapstructure:",squash"`
}

// RequestTimeout returns the inbound request budget as a duration.
func (c *AppConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// StorefrontConfig holds the connection details for the remote storefront REST API.
type StorefrontConfig struct {
	// URL is the base URL of the storefront API.
	URL string `mapstructure:"STOREFRONT_API_URL" required:"true"`
	// TimeoutSeconds bounds every request to the storefront API.
	TimeoutSeconds int `mapstructure:"STOREFRONT_API_TIMEOUT_SECONDS" default:"10"`
	// BreakerFailureThreshold is the number of consecutive failures that opens the circuit.
	BreakerFailureThreshold int `mapstructure:"BREAKER_FAILURE_THRESHOLD" default:"5"`
	// BreakerOpenSeconds is how long the circuit stays open before probing again.
	BreakerOpenSeconds int `mapstructure:"BREAKER_OPEN_SECONDS" default:"30"`
}

// Timeout returns the request timeout as a duration.
func (c StorefrontConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig holds the Redis connection string.
type RedisConfig struct {
	// URL is in the format redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// CheckoutConfig holds checkout session lifetimes.
type CheckoutConfig struct {
	// SessionTTLSeconds is how long an idle checkout session is kept.
	SessionTTLSeconds int `mapstructure:"CHECKOUT_SESSION_TTL_SECONDS" default:"3600"`
	// HandoffTTLSeconds is how long a pending payment handoff stays retrievable.
	HandoffTTLSeconds int `mapstructure:"PAYMENT_HANDOFF_TTL_SECONDS" default:"900"`
	// CartSnapshotSeconds is how long a held cart snapshot is served before it is re-read.
	CartSnapshotSeconds int `mapstructure:"CART_SNAPSHOT_TTL_SECONDS" default:"30"`
	// ProfileCacheSeconds is how long a resolved auth profile is cached.
	ProfileCacheSeconds int `mapstructure:"AUTH_PROFILE_CACHE_SECONDS" default:"300"`
}

// EsewaConfig holds the eSewa merchant settings.
type EsewaConfig struct {
	// GatewayURL is the eSewa form POST endpoint.
	GatewayURL string `mapstructure:"ESEWA_GATEWAY_URL" default:"https://uat.esewa.com.np/epay/main"`
	// MerchantCode is the scd field sent to eSewa.
	MerchantCode string `mapstructure:"ESEWA_MERCHANT_CODE" default:"EPAYTEST"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
