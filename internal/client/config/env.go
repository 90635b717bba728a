package config

import "github.com/dmitrijs2005/salesinsight/internal/envx"

func parseEnv(cfg *Config) error {
	if err := envx.LoadDotEnv(".env"); err != nil {
		return err
	}

	envx.String("ANALYZER_ADDR", &cfg.EndpointAddr)
	envx.String("SALES_SERVER_URL", &cfg.ServerURL)
	envx.String("SALES_USERNAME", &cfg.Username)
	envx.String("SALES_PASSWORD", &cfg.Password)
	envx.String("GEMINI_API_KEY", &cfg.GeminiAPIKey)
	envx.String("GEMINI_MODEL", &cfg.GeminiModel)
	envx.String("GEMINI_BASE_URL", &cfg.GeminiBaseURL)
	if err := envx.Duration("DATA_REQUEST_TIMEOUT", &cfg.DataRequestTimeout); err != nil {
		return err
	}
	if err := envx.Duration("LLM_REQUEST_TIMEOUT", &cfg.LLMRequestTimeout); err != nil {
		return err
	}
	envx.String("ANALYZER_LOG_LEVEL", &cfg.LogLevel)

	return nil
}
