package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Data source kinds accepted in Config.DataSource.
const (
	DataSourceFile = "file"
	DataSourceS3   = "s3"
)

// minSecretKeyLen is the shortest HS256 secret the server accepts.
const minSecretKeyLen = 32

// Config holds runtime settings for the sales data server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: access token lifetime.
//   - TokenIssuer: value of the "iss" claim, checked on verification.
//   - UsersFile: JSON users file for the in-memory credential store.
//   - DatabaseDSN: PostgreSQL DSN (pgx); when set it replaces UsersFile.
//   - DataSource: "file" or "s3".
//   - CSVPath: local CSV file used when DataSource is "file".
//   - S3*: object storage settings used when DataSource is "s3".
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr                string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	TokenIssuer                 string
	UsersFile                   string
	DatabaseDSN                 string
	DataSource                  string
	CSVPath                     string
	S3Bucket                    string
	S3Key                       string
	S3Region                    string
	S3BaseEndpoint              string
	S3RootUser                  string
	S3RootPassword              string
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// SecretKey is deliberately left empty.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.TokenIssuer = "salesserver"
	c.UsersFile = "data/users.json"
	c.DataSource = DataSourceFile
	c.CSVPath = "data/data_penjualan.csv"
	c.S3Region = "us-east-1"
	c.LogLevel = "info"
}

// Validate checks that the configuration can be used to start the server.
func (c *Config) Validate() error {
	var usersFileRules, csvRules, s3Rules []validation.Rule
	if c.DatabaseDSN == "" {
		usersFileRules = append(usersFileRules, validation.Required)
	}
	switch c.DataSource {
	case DataSourceFile:
		csvRules = append(csvRules, validation.Required)
	case DataSourceS3:
		s3Rules = append(s3Rules, validation.Required)
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.EndpointAddr, validation.Required),
		validation.Field(&c.SecretKey, validation.Required, validation.Length(minSecretKeyLen, 0)),
		validation.Field(&c.AccessTokenValidityDuration, validation.Required, validation.Min(time.Minute)),
		validation.Field(&c.TokenIssuer, validation.Required),
		validation.Field(&c.UsersFile, usersFileRules...),
		validation.Field(&c.DataSource, validation.Required, validation.In(DataSourceFile, DataSourceS3)),
		validation.Field(&c.CSVPath, csvRules...),
		validation.Field(&c.S3Bucket, s3Rules...),
		validation.Field(&c.S3Key, s3Rules...),
		validation.Field(&c.S3Region, s3Rules...),
	)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
// It panics when one of the sources is malformed.
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
