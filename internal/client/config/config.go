package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Config holds runtime settings for the sales analysis service.
//
// Fields:
//   - EndpointAddr: bind address of the analysis HTTP endpoint.
//   - ServerURL: base URL of the sales data server.
//   - Username, Password: credentials used to obtain a token.
//   - GeminiAPIKey, GeminiModel, GeminiBaseURL: LLM endpoint settings.
//   - DataRequestTimeout: timeout for each call to the data server.
//   - LLMRequestTimeout: timeout for the generateContent call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr       string
	ServerURL          string
	Username           string
	Password           string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	DataRequestTimeout time.Duration
	LLMRequestTimeout  time.Duration
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8001"
	c.ServerURL = "http://127.0.0.1:8000"
	c.GeminiModel = "gemini-2.5-pro"
	c.GeminiBaseURL = "https://generativelanguage.googleapis.com"
	c.DataRequestTimeout = 10 * time.Second
	c.LLMRequestTimeout = 60 * time.Second
	c.LogLevel = "info"
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.EndpointAddr, validation.Required),
		validation.Field(&c.ServerURL, validation.Required, is.URL),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
		validation.Field(&c.GeminiAPIKey, validation.Required),
		validation.Field(&c.GeminiModel, validation.Required),
		validation.Field(&c.GeminiBaseURL, validation.Required, is.URL),
		validation.Field(&c.DataRequestTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.LLMRequestTimeout, validation.Required, validation.Min(time.Second)),
	)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
