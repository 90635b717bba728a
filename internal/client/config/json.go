package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/salesinsight/internal/flagx"
	"github.com/dmitrijs2005/salesinsight/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts use
// timex.Duration so they can be written as "10s" or as nanoseconds.
type JsonConfig struct {
	EndpointAddr       string         `json:"endpoint_addr"`
	ServerURL          string         `json:"server_url"`
	Username           string         `json:"username"`
	Password           string         `json:"password"`
	GeminiAPIKey       string         `json:"gemini_api_key"`
	GeminiModel        string         `json:"gemini_model"`
	GeminiBaseURL      string         `json:"gemini_base_url"`
	DataRequestTimeout timex.Duration `json:"data_request_timeout"`
	LLMRequestTimeout  timex.Duration `json:"llm_request_timeout"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Keys absent
// from the file keep their current values; read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{
		EndpointAddr:       cfg.EndpointAddr,
		ServerURL:          cfg.ServerURL,
		Username:           cfg.Username,
		Password:           cfg.Password,
		GeminiAPIKey:       cfg.GeminiAPIKey,
		GeminiModel:        cfg.GeminiModel,
		GeminiBaseURL:      cfg.GeminiBaseURL,
		DataRequestTimeout: timex.Duration{Duration: cfg.DataRequestTimeout},
		LLMRequestTimeout:  timex.Duration{Duration: cfg.LLMRequestTimeout},
		LogLevel:           cfg.LogLevel,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.EndpointAddr = jc.EndpointAddr
	cfg.ServerURL = jc.ServerURL
	cfg.Username = jc.Username
	cfg.Password = jc.Password
	cfg.GeminiAPIKey = jc.GeminiAPIKey
	cfg.GeminiModel = jc.GeminiModel
	cfg.GeminiBaseURL = jc.GeminiBaseURL
	cfg.DataRequestTimeout = jc.DataRequestTimeout.Duration
	cfg.LLMRequestTimeout = jc.LLMRequestTimeout.Duration
	cfg.LogLevel = jc.LogLevel
}
