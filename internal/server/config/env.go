package config

import "github.com/dmitrijs2005/salesinsight/internal/envx"

// parseEnv overlays config with SALES_* environment variables. A .env file
// in the working directory is loaded first; variables already present in the
// environment take precedence over it.
func parseEnv(config *Config) error {
	if err := envx.LoadDotEnv(".env"); err != nil {
		return err
	}

	envx.String("SALES_ADDR", &config.EndpointAddr)
	envx.String("SALES_SECRET_KEY", &config.SecretKey)
	if err := envx.Minutes("SALES_TOKEN_TTL_MINUTES", &config.AccessTokenValidityDuration); err != nil {
		return err
	}
	envx.String("SALES_TOKEN_ISSUER", &config.TokenIssuer)
	envx.String("SALES_USERS_FILE", &config.UsersFile)
	envx.String("SALES_DATABASE_DSN", &config.DatabaseDSN)
	envx.String("SALES_DATA_SOURCE", &config.DataSource)
	envx.String("SALES_CSV_PATH", &config.CSVPath)
	envx.String("SALES_S3_BUCKET", &config.S3Bucket)
	envx.String("SALES_S3_KEY", &config.S3Key)
	envx.String("SALES_S3_REGION", &config.S3Region)
	envx.String("SALES_S3_ENDPOINT", &config.S3BaseEndpoint)
	envx.String("SALES_S3_USER", &config.S3RootUser)
	envx.String("SALES_S3_PASSWORD", &config.S3RootPassword)
	envx.String("SALES_LOG_LEVEL", &config.LogLevel)

	return nil
}
