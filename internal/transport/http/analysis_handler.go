package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"twsecli/internal/config"
	apierrors "twsecli/internal/errors"
	"twsecli/internal/services"
)

// uploadParts are the multipart form field names for the three sources, in
// the order they are reported when missing.
var uploadParts = []string{"revenue", "value", "industry"}

// AnalysisHandler serves the analysis endpoint: three tabular uploads in,
// three derived views out.
type AnalysisHandler struct {
	service *services.AnalysisService
	logger  *slog.Logger
}

// NewAnalysisHandler creates the handler.
func NewAnalysisHandler(service *services.AnalysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger.With(slog.String("component", "analysis_handler")),
	}
}

// Routes returns the analysis routes.
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Post("/", h.Analyze)
	return r
}

// Analyze handles POST /api/analysis. The request is a multipart form with
// parts "revenue", "value" and "industry", each a CSV or XLSX file.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.InvalidRequestWithError(err)))
		return
	}

	uploads := make(map[string]services.SourceUpload, len(uploadParts))
	for _, part := range uploadParts {
		file, header, err := r.FormFile(part)
		if err != nil {
			render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrUploadPart(part, err)))
			return
		}
		defer file.Close()
		uploads[part] = services.SourceUpload{Name: header.Filename, Reader: file}
	}

	resp, err := h.service.Analyze(ctx, uploads["revenue"], uploads["value"], uploads["industry"])
	if err != nil {
		h.logger.ErrorContext(ctx, "analysis failed",
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrPipelineExecution(err)))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}
