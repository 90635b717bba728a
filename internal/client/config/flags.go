package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/salesinsight/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the analysis endpoint
//	-s string   base URL of the sales data server
//	-u string   data server username
//	-p string   data server password
//	-m string   Gemini model
//	-dt int     data server request timeout (in seconds)
//	-lt int     Gemini request timeout (in seconds)
//	-l string   log level
//
// The Gemini API key has no flag; set GEMINI_API_KEY or use the JSON file.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-u", "-p", "-m", "-dt", "-lt", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to run the analysis endpoint")
	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "sales data server URL")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "sales data server username")
	fs.StringVar(&cfg.Password, "p", cfg.Password, "sales data server password")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "Gemini model")
	dataTimeout := fs.Int("dt", int(cfg.DataRequestTimeout.Seconds()), "data server request timeout (in seconds)")
	llmTimeout := fs.Int("lt", int(cfg.LLMRequestTimeout.Seconds()), "Gemini request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.DataRequestTimeout = time.Duration(*dataTimeout) * time.Second
	cfg.LLMRequestTimeout = time.Duration(*llmTimeout) * time.Second
}
