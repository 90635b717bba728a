// Package services contains the orchestration of the sales analysis service:
// log in to the data server, fetch the records and ask the model about them.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/salesinsight/internal/client/llm"
	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/logging"
)

// DataClient is the part of the data server API the analysis needs.
type DataClient interface {
	Login(ctx context.Context, username, password string) (string, error)
	GetSalesData(ctx context.Context, token string) (json.RawMessage, error)
}

type Credentials struct {
	Username string
	Password string
}

type AnalysisService struct {
	data   DataClient
	model  llm.Generator
	creds  Credentials
	logger logging.Logger
}

func NewAnalysisService(data DataClient, model llm.Generator, creds Credentials, logger logging.Logger) *AnalysisService {
	return &AnalysisService{
		data:   data,
		model:  model,
		creds:  creds,
		logger: logger.With("module", "analysis_service"),
	}
}

// Analyze runs one full analysis. Data server failures match
// common.ErrUpstreamUnavailable; model failures match common.ErrorInternal.
// A fresh token is requested on every call.
func (s *AnalysisService) Analyze(ctx context.Context) (string, error) {
	token, err := s.data.Login(ctx, s.creds.Username, s.creds.Password)
	if err != nil {
		s.logger.Error(ctx, "data server login failed", "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrUpstreamUnavailable, err)
	}

	records, err := s.data.GetSalesData(ctx, token)
	if err != nil {
		s.logger.Error(ctx, "sales data fetch failed", "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrUpstreamUnavailable, err)
	}
	s.logger.Info(ctx, "sales data received", "bytes", len(records))

	text, err := s.model.Generate(ctx, BuildPrompt(records))
	if err != nil {
		s.logger.Error(ctx, "model call failed", "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "analysis received")
	return StripCodeFences(text), nil
}
