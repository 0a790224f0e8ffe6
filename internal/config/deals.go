package config

import (
	"fmt"

	"github.com/mrmeatball22/deal-analyzer/internal/analysis"
	"go.uber.org/zap"
)

// AnalyzeDeals runs the analyzer over every configured deal and returns the
// results in configuration order.
func (c *Configuration) AnalyzeDeals(logger *zap.Logger) ([]analysis.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]analysis.Result, 0, len(c.Deals))
	for _, deal := range c.Deals {
		metrics, err := analysis.Analyze(logger, deal.ToDealInputs())
		if err != nil {
			return nil, fmt.Errorf("deal %s: %w", deal.Name, err)
		}
		logger.Debug("analyzed configured deal",
			zap.String("op", "config.AnalyzeDeals"),
			zap.String("deal", deal.Name),
		)
		results = append(results, analysis.Result{Name: deal.Name, Metrics: *metrics})
	}

	return results, nil
}
