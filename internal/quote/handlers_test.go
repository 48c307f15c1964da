package quote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/seatrans/pda-api/internal/document"
	"github.com/seatrans/pda-api/internal/quote"
	"github.com/seatrans/pda-api/internal/template"
)

type fakeTemplates map[string]string

func (f fakeTemplates) Load(_ context.Context, name string) (string, error) {
	body, ok := f[name]
	if !ok {
		return "", template.ErrNotFound
	}
	return body, nil
}

type fakeUploader struct {
	lastInquiry string
	lastType    string
	lastFile    string
	lastHTML    string
	err         error
}

func (f *fakeUploader) Store(_ context.Context, inquiryID, docType, fileName, html string) (document.Upload, error) {
	f.lastInquiry, f.lastType, f.lastFile, f.lastHTML = inquiryID, docType, fileName, html
	if f.err != nil {
		return document.Upload{}, f.err
	}
	return document.Upload{ID: "doc-1", URL: "https://docs.local/doc-1"}, nil
}

func newHandler(up *fakeUploader) *quote.Handler {
	svc := &quote.Service{
		Templates:       fakeTemplates{"quote": "<html>{{mv}}:{{grand_total}}</html>"},
		Uploader:        up,
		DefaultTemplate: "quote",
	}
	return &quote.Handler{Service: svc, Validate: validator.New()}
}

func TestRenderEndpoint(t *testing.T) {
	h := newHandler(nil)
	body := `{"variant":"qn","data":{"mv":"MV TEST","grt":10000,"loa":150,"berth_hours":96,"anchorage_hours":24,"at_berth":"x","loading_term":"import"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/render", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Render(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data quote.RenderResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, quote.VariantQN, resp.Data.Variant)
	require.Equal(t, "quote", resp.Data.Template)
	require.Equal(t, "<html>MV TEST:12,970.00</html>", resp.Data.HTML)
}

func TestRenderEndpointValidation(t *testing.T) {
	h := newHandler(nil)
	cases := []string{
		`{"data":{}}`,
		`{"variant":"sgn","data":{}}`,
		`not json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/render", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Render(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestRenderEndpointTemplateNotFound(t *testing.T) {
	h := newHandler(nil)
	body := `{"variant":"hcm","template":"missing","data":{}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/render", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Render(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "TEMPLATE_NOT_FOUND")
}

func TestPreviewEndpointReturnsHTML(t *testing.T) {
	h := newHandler(nil)
	body := `{"variant":"hcm","data":{"mv":"MV <X>"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Preview(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "MV &lt;X&gt;")
}

func TestCreateDocumentEndpoint(t *testing.T) {
	up := &fakeUploader{}
	h := newHandler(up)

	router := chi.NewRouter()
	router.Post("/api/v1/quotes/{inquiryId}/documents", h.CreateDocument)

	body := `{"variant":"qn","data":{"mv":"MV TEST","grt":5000}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/inq-42/documents", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data quote.ArchiveResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "inq-42", resp.Data.InquiryID)
	require.Equal(t, "doc-1", resp.Data.Document.ID)

	require.Equal(t, "inq-42", up.lastInquiry)
	require.Equal(t, "quote", up.lastType)
	require.Equal(t, "quote-inq-42.html", up.lastFile)
	require.Contains(t, up.lastHTML, "MV TEST")
}

func TestCreateDocumentGeneratesInquiryID(t *testing.T) {
	up := &fakeUploader{}
	h := newHandler(up)

	router := chi.NewRouter()
	router.Post("/api/v1/quotes/documents", h.CreateDocument)

	body := `{"variant":"qn","data":{}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/documents", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, up.lastInquiry)
}
