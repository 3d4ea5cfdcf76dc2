package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"twsecli/internal/config"
	"twsecli/internal/dataprocessing"
	"twsecli/pkg/contracts/domain"
)

// SourceUpload is one raw source table handed to the service: a stream plus
// the file name it arrived under (the extension picks CSV or XLSX parsing).
type SourceUpload struct {
	Name   string
	Reader io.Reader
}

// AnalysisMeta describes one analysis run for the presentation layer. Title
// is display state from configuration; the pipeline never reads it.
type AnalysisMeta struct {
	Title       string `json:"title"`
	GeneratedAt string `json:"generated_at"`
	Partial     bool   `json:"partial"`
}

// AnalysisResponse is the full payload the presentation layer consumes:
// the three derived views plus per-source error messages for the ones that
// failed their schema contract.
type AnalysisResponse struct {
	Meta      AnalysisMeta            `json:"meta"`
	Composite []domain.CompositeEntry `json:"composite"`
	Revenue   []domain.RevenueEntry   `json:"revenue"`
	Value     []domain.ValueEntry     `json:"value"`
	Errors    map[string]string       `json:"errors,omitempty"`
}

// AnalysisService runs the cleaning/ranking pipeline over uploaded source
// tables. Stateless: every call processes a complete snapshot.
type AnalysisService struct {
	processor *dataprocessing.Processor
	logger    *slog.Logger
	title     string
	encodings []string
}

// NewAnalysisService creates the service from application configuration.
func NewAnalysisService(logger *slog.Logger, cfg *config.Config) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "analysis_service"))
	return &AnalysisService{
		processor: dataprocessing.NewProcessor(logger, cfg.PipelineSettings()),
		logger:    logger,
		title:     cfg.Server.Title,
		encodings: cfg.Pipeline.Encodings,
	}
}

// Analyze ingests the three source tables and returns the derived views.
// A source that cannot be read at all (bad encoding, malformed file) aborts
// the whole run with an error; schema-level failures only void the views
// depending on that source and are reported in the response.
func (s *AnalysisService) Analyze(ctx context.Context, rev, val, ind SourceUpload) (*AnalysisResponse, error) {
	start := time.Now()
	analysesTotal.Inc()

	revTable, err := s.readSource(ctx, dataprocessing.SourceRevenue, rev)
	if err != nil {
		analysisFailures.Inc()
		return nil, err
	}
	valTable, err := s.readSource(ctx, dataprocessing.SourceValue, val)
	if err != nil {
		analysisFailures.Inc()
		return nil, err
	}
	indTable, err := s.readSource(ctx, dataprocessing.SourceIndustry, ind)
	if err != nil {
		analysisFailures.Inc()
		return nil, err
	}

	result, err := s.processor.Run(ctx, revTable, valTable, indTable)
	if err != nil {
		analysisFailures.Inc()
		return nil, err
	}
	analysisDuration.Observe(time.Since(start).Seconds())

	resp := &AnalysisResponse{
		Meta: AnalysisMeta{
			Title:       s.title,
			GeneratedAt: time.Now().Format(time.RFC3339),
			Partial:     result.HasErrors(),
		},
		Composite: result.Composite,
		Revenue:   result.Revenue,
		Value:     result.Value,
	}

	if result.HasErrors() {
		resp.Errors = make(map[string]string)
		for source, msg := range map[string]string{
			dataprocessing.SourceIndustry: result.IndustryErr,
			dataprocessing.SourceRevenue:  result.RevenueErr,
			dataprocessing.SourceValue:    result.ValueErr,
		} {
			if msg != "" {
				resp.Errors[source] = msg
				schemaErrorsTotal.WithLabelValues(source).Inc()
			}
		}
	}

	return resp, nil
}

func (s *AnalysisService) readSource(ctx context.Context, source string, upload SourceUpload) (*dataprocessing.Table, error) {
	table, err := dataprocessing.ReadTableAny(upload.Reader, upload.Name, s.encodings...)
	if err != nil {
		s.logger.ErrorContext(ctx, "source table unreadable",
			slog.String("source", source),
			slog.String("file", upload.Name),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("read %s source: %w", source, err)
	}
	s.logger.DebugContext(ctx, "source table loaded",
		slog.String("source", source),
		slog.Int("rows", table.RowCount()))
	return table, nil
}
