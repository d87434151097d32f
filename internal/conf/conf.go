package conf

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	_ "github.com/go-kratos/kratos/v2/encoding/yaml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EnvPrefix selects the environment variables visible to ${VAR:default}
// placeholders in the config file, with the prefix stripped.
const EnvPrefix = "LINK_TRACKER_"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Bootstrap struct {
	Server    Server    `json:"server"`
	Storage   Storage   `json:"storage"`
	Redis     Redis     `json:"redis"`
	Allocator Allocator `json:"allocator"`
	GeoIP     GeoIP     `json:"geoip"`
	Log       Log       `json:"log"`
	Queue     Queue     `json:"queue"`
}

type Server struct {
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
	BaseURL string   `json:"base_url"`
	// LinkPrefix is the path segment before short codes. Nil means "go";
	// an explicit empty string serves codes at the root.
	LinkPrefix *string  `json:"link_prefix"`
	RateLimit  int      `json:"rate_limit"`
	StopWait   Duration `json:"stop_timeout"`
}

type Storage struct {
	Driver     string `json:"driver"`
	DSN        string `json:"dsn"`
	MaxConns   int32  `json:"max_conns"`
	ClickStore *bool  `json:"click_store"`
}

// ClickStoreEnabled reports whether click events are logged; defaults to true.
func (s Storage) ClickStoreEnabled() bool {
	return s.ClickStore == nil || *s.ClickStore
}

type Redis struct {
	Addr          string   `json:"addr"`
	Password      string   `json:"password"`
	DB            int      `json:"db"`
	CacheTTL      Duration `json:"cache_ttl"`
	VisitorLedger bool     `json:"visitor_ledger"`
}

type Allocator struct {
	CodeLength  int `json:"code_length"`
	MaxAttempts int `json:"max_attempts"`
}

type GeoIP struct {
	DatabasePath string `json:"database_path"`
}

type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

type Queue struct {
	Buffer int `json:"buffer"`
}

// Load reads the config file at path, resolves placeholders from the
// environment and fills defaults.
func Load(path string) (*Bootstrap, error) {
	c := config.New(
		config.WithSource(
			file.NewSource(path),
			env.NewSource(EnvPrefix),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	bc.setDefaults()
	if err := bc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &bc, nil
}

func (bc *Bootstrap) setDefaults() {
	if bc.Server.Addr == "" {
		bc.Server.Addr = ":8080"
	}
	if bc.Server.Timeout.Duration == 0 {
		bc.Server.Timeout.Duration = 10 * time.Second
	}
	if bc.Server.StopWait.Duration == 0 {
		bc.Server.StopWait.Duration = 10 * time.Second
	}
	if bc.Server.BaseURL == "" {
		bc.Server.BaseURL = "http://localhost:8080"
	}
	if bc.Server.LinkPrefix == nil {
		prefix := "go"
		bc.Server.LinkPrefix = &prefix
	}
	if bc.Server.RateLimit == 0 {
		bc.Server.RateLimit = 100
	}
	if bc.Storage.Driver == "" {
		bc.Storage.Driver = DriverSQLite
	}
	if bc.Storage.DSN == "" && bc.Storage.Driver == DriverSQLite {
		bc.Storage.DSN = "data/link-tracker.db"
	}
	if bc.Redis.CacheTTL.Duration == 0 {
		bc.Redis.CacheTTL.Duration = 10 * time.Minute
	}
	if bc.Allocator.CodeLength == 0 {
		bc.Allocator.CodeLength = 6
	}
	if bc.Allocator.MaxAttempts == 0 {
		bc.Allocator.MaxAttempts = 100
	}
	if bc.Log.Level == "" {
		bc.Log.Level = "info"
	}
	if bc.Log.Format == "" {
		bc.Log.Format = "console"
	}
	if bc.Queue.Buffer == 0 {
		bc.Queue.Buffer = 1024
	}
}

func (bc Bootstrap) Validate() error {
	return validation.ValidateStruct(&bc,
		validation.Field(&bc.Storage),
		validation.Field(&bc.Allocator),
		validation.Field(&bc.Log),
	)
}

func (s Storage) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Driver, validation.In(DriverSQLite, DriverPostgres, DriverMemory)),
		validation.Field(&s.DSN, validation.When(s.Driver == DriverPostgres, validation.Required)),
	)
}

func (a Allocator) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.CodeLength, validation.Min(4), validation.Max(32)),
		validation.Field(&a.MaxAttempts, validation.Min(1)),
	)
}

func (l Log) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&l.Format, validation.In("console", "json")),
	)
}

// Duration reads "1m30s" style strings, or plain numbers as seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value * float64(time.Second))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	case nil:
		d.Duration = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
