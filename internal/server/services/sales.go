package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/logging"
	"github.com/dmitrijs2005/salesinsight/internal/server/models"
	"github.com/dmitrijs2005/salesinsight/internal/server/sales"
)

// SalesService returns the full contents of the backing sales source. The
// source is re-read on every call so edits to it show up without a restart.
type SalesService struct {
	source sales.Source
	logger logging.Logger
}

func NewSalesService(source sales.Source, logger logging.Logger) *SalesService {
	return &SalesService{source: source, logger: logger.With("module", "sales_service")}
}

// SourceName identifies the backing source, e.g. the CSV path.
func (s *SalesService) SourceName() string {
	return s.source.Name()
}

// GetSalesData fails with common.ErrDataUnavailable when the source is
// missing and with common.ErrorInternal for any other read or parse error.
func (s *SalesService) GetSalesData(ctx context.Context) ([]models.SalesRecord, error) {
	rc, err := s.source.Open(ctx)
	if err != nil {
		if errors.Is(err, common.ErrDataUnavailable) {
			s.logger.Warn(ctx, "sales source missing", "source", s.source.Name())
			return nil, err
		}
		s.logger.Error(ctx, "sales source open failed", "source", s.source.Name(), "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	defer rc.Close()

	records, err := sales.ParseCSV(rc)
	if err != nil {
		s.logger.Error(ctx, "sales source parse failed", "source", s.source.Name(), "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	s.logger.Debug(ctx, "sales data read", "source", s.source.Name(), "records", len(records))
	return records, nil
}
