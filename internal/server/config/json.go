package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/salesinsight/internal/flagx"
	"github.com/dmitrijs2005/salesinsight/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so they can be written as "30m".
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	TokenIssuer                 string         `json:"token_issuer"`
	UsersFile                   string         `json:"users_file"`
	DatabaseDSN                 string         `json:"database_dsn"`
	DataSource                  string         `json:"data_source"`
	CSVPath                     string         `json:"csv_path"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Key                       string         `json:"s3_key"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson overlays config with the JSON file named by -c/-config.
// Keys missing from the file keep their current values. Read or decode
// errors panic.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := JsonConfig{
		EndpointAddr:                config.EndpointAddr,
		SecretKey:                   config.SecretKey,
		AccessTokenValidityDuration: timex.Duration{Duration: config.AccessTokenValidityDuration},
		TokenIssuer:                 config.TokenIssuer,
		UsersFile:                   config.UsersFile,
		DatabaseDSN:                 config.DatabaseDSN,
		DataSource:                  config.DataSource,
		CSVPath:                     config.CSVPath,
		S3Bucket:                    config.S3Bucket,
		S3Key:                       config.S3Key,
		S3Region:                    config.S3Region,
		S3BaseEndpoint:              config.S3BaseEndpoint,
		S3RootUser:                  config.S3RootUser,
		S3RootPassword:              config.S3RootPassword,
		LogLevel:                    config.LogLevel,
	}
	if err := json.Unmarshal(data, &c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.TokenIssuer = c.TokenIssuer
	config.UsersFile = c.UsersFile
	config.DatabaseDSN = c.DatabaseDSN
	config.DataSource = c.DataSource
	config.CSVPath = c.CSVPath
	config.S3Bucket = c.S3Bucket
	config.S3Key = c.S3Key
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.LogLevel = c.LogLevel
}
