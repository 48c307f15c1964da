package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/seatrans/pda-api/internal/common"
	"github.com/seatrans/pda-api/internal/document"
	"github.com/seatrans/pda-api/internal/obs"
	"github.com/seatrans/pda-api/internal/template"
)

// TemplateSource resolves a template name to its HTML body.
type TemplateSource interface {
	Load(ctx context.Context, name string) (string, error)
}

// Uploader pushes a rendered document to the archive service.
type Uploader interface {
	Store(ctx context.Context, inquiryID, docType, fileName, html string) (document.Upload, error)
}

// Service renders quotes against the configured tariffs and optionally
// hands finished documents to the archive.
type Service struct {
	Templates       TemplateSource
	Uploader        Uploader
	DefaultTemplate string
}

// RenderResult is the outcome of one render call.
type RenderResult struct {
	Variant  Variant `json:"variant"`
	Template string  `json:"template"`
	HTML     string  `json:"html"`
}

// Render loads the template and substitutes the quote data priced under the
// requested tariff variant.
func (s *Service) Render(ctx context.Context, variant, templateName string, in Input) (RenderResult, error) {
	v, ok := ParseVariant(variant)
	if !ok {
		return RenderResult{}, common.BadRequest("INVALID_VARIANT", fmt.Sprintf("unknown tariff variant %q", variant))
	}
	t, _ := TariffFor(v)

	if templateName == "" {
		templateName = s.DefaultTemplate
	}
	body, err := s.Templates.Load(ctx, templateName)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			return RenderResult{}, common.NotFound("TEMPLATE_NOT_FOUND", fmt.Sprintf("template %q not found", templateName))
		}
		return RenderResult{}, fmt.Errorf("load template %q: %w", templateName, err)
	}

	start := time.Now()
	html := Render(body, in, t)
	if obs.QuoteRenderDuration != nil {
		obs.QuoteRenderDuration.WithLabelValues(string(v)).Observe(time.Since(start).Seconds())
	}
	if obs.QuotesRenderedTotal != nil {
		obs.QuotesRenderedTotal.WithLabelValues(string(v)).Inc()
	}
	zerolog.Ctx(ctx).Debug().
		Str("variant", string(v)).
		Str("template", templateName).
		Int("bytes", len(html)).
		Msg("quote rendered")

	return RenderResult{Variant: v, Template: templateName, HTML: html}, nil
}

// ArchiveResult describes a stored quote document.
type ArchiveResult struct {
	InquiryID string          `json:"inquiry_id"`
	Document  document.Upload `json:"document"`
}

// RenderAndArchive renders the quote and stores the document under the
// inquiry. A blank inquiry id gets a generated one so ad-hoc quotes still
// archive cleanly.
func (s *Service) RenderAndArchive(ctx context.Context, inquiryID, variant, templateName string, in Input) (ArchiveResult, error) {
	if s.Uploader == nil {
		return ArchiveResult{}, errors.New("quote: document uploader not configured")
	}
	if inquiryID == "" {
		inquiryID = uuid.NewString()
	}

	res, err := s.Render(ctx, variant, templateName, in)
	if err != nil {
		return ArchiveResult{}, err
	}

	fileName := fmt.Sprintf("quote-%s.html", inquiryID)
	up, err := s.Uploader.Store(ctx, inquiryID, "quote", fileName, res.HTML)
	if err != nil {
		if obs.DocumentUploadsTotal != nil {
			obs.DocumentUploadsTotal.WithLabelValues("failed").Inc()
		}
		return ArchiveResult{}, common.Upstream("DOCUMENT_UPLOAD_FAILED", "failed to store quote document", err)
	}
	if obs.DocumentUploadsTotal != nil {
		obs.DocumentUploadsTotal.WithLabelValues("stored").Inc()
	}
	zerolog.Ctx(ctx).Info().
		Str("inquiry_id", inquiryID).
		Str("document_id", up.ID).
		Msg("quote document archived")

	return ArchiveResult{InquiryID: inquiryID, Document: up}, nil
}
