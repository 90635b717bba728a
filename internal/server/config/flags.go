package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/salesinsight/internal/flagx"
	"github.com/dmitrijs2005/salesinsight/internal/timex"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    HTTP bind address (e.g. ":8000")
//	-s string    JWT HMAC secret key
//	-t int       access token validity, minutes
//	-i string    token issuer
//	-u string    users file for the in-memory credential store
//	-d string    PostgreSQL DSN for the credential store
//	-ds string   data source: file or s3
//	-f string    CSV file path
//	-b string    S3 bucket
//	-k string    S3 object key
//	-g string    S3 region
//	-e string    S3 base endpoint (e.g. "http://127.0.0.1:9000/")
//	-su string   S3 access key
//	-sp string   S3 secret key
//	-l string    log level
//
// os.Args is filtered with flagx.FilterArgs first, so flags owned by other
// loaders (such as -c) do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-s", "-t", "-i", "-u", "-d", "-ds", "-f", "-b", "-k", "-g", "-e", "-su", "-sp", "-l",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	accessTokenValidityDuration := fs.Int64("t", int64(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&config.TokenIssuer, "i", config.TokenIssuer, "token issuer")
	fs.StringVar(&config.UsersFile, "u", config.UsersFile, "users file")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DataSource, "ds", config.DataSource, "data source (file or s3)")
	fs.StringVar(&config.CSVPath, "f", config.CSVPath, "CSV file path")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Key, "k", config.S3Key, "S3 object key")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3RootUser, "su", config.S3RootUser, "S3 access key")
	fs.StringVar(&config.S3RootPassword, "sp", config.S3RootPassword, "S3 secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	ttl, err := timex.Minutes(*accessTokenValidityDuration)
	if err != nil {
		panic(fmt.Errorf("-t: %w", err))
	}
	config.AccessTokenValidityDuration = ttl
}
