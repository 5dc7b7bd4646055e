package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	// DefaultStorePath is the SQLite file used when sqlite.path is not configured.
	DefaultStorePath         = "food_db.db"
	defaultBusyTimeout       = 5 * time.Second
	defaultSlowThreshold     = 200 * time.Millisecond
	defaultLowStockThreshold = 10.0
	defaultMetricsNamespace  = "restaurant"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite" validate:"required"`

	// Inventory configuration for stock reports
	Inventory *InventoryConfig `json:"inventory" yaml:"inventory"`

	// Metrics configuration for workflow counters
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SQLiteConfig defines where the embedded store lives and how it is opened
type SQLiteConfig struct {
	// Path to the database file
	Path string `json:"path" yaml:"path" validate:"required"`

	// How long a writer waits for a lock held by another process before failing
	BusyTimeout time.Duration `json:"busyTimeout" yaml:"busyTimeout" validate:"gte=0"`

	// Statements slower than this are logged as warnings
	SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold" validate:"gte=0"`
}

// InventoryConfig defines ingredient stock settings
type InventoryConfig struct {
	LowStockThreshold float64 `json:"lowStockThreshold" yaml:"lowStockThreshold" validate:"gte=0"`
}

// MetricsConfig defines prometheus metric naming
type MetricsConfig struct {
	Namespace string `json:"namespace" yaml:"namespace" validate:"metric_name"`
}

var (
	metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	validate          = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("metric_name", func(fl validator.FieldLevel) bool {
		return metricNamePattern.MatchString(fl.Field().String())
	})

	return v
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override file values.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SQLITE_BUSYTIMEOUT -> sqlite.busyTimeout
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects options that are set but unusable, such as a negative busy timeout.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

// ApplyDefaults fills every unset option with its default value. Negative values
// are left for Validate to reject.
func ApplyDefaults(cfg *Config) {
	if cfg.SQLite == nil {
		cfg.SQLite = &SQLiteConfig{}
	}
	if strings.TrimSpace(cfg.SQLite.Path) == "" {
		cfg.SQLite.Path = DefaultStorePath
	}
	if cfg.SQLite.BusyTimeout == 0 {
		cfg.SQLite.BusyTimeout = defaultBusyTimeout
	}
	if cfg.SQLite.SlowThreshold == 0 {
		cfg.SQLite.SlowThreshold = defaultSlowThreshold
	}

	if cfg.Inventory == nil {
		cfg.Inventory = &InventoryConfig{}
	}
	if cfg.Inventory.LowStockThreshold == 0 {
		cfg.Inventory.LowStockThreshold = defaultLowStockThreshold
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if strings.TrimSpace(cfg.Metrics.Namespace) == "" {
		cfg.Metrics.Namespace = defaultMetricsNamespace
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
