package router

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/DjordjeVuckovic/code-comparator/internal/apperr"
	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/dto"
	"github.com/DjordjeVuckovic/code-comparator/internal/extract"
	"github.com/DjordjeVuckovic/code-comparator/internal/report"
	"github.com/DjordjeVuckovic/code-comparator/internal/storage/in_mem"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	firstField  = "first"
	secondField = "second"
)

type CompareRouter struct {
	e       *echo.Echo
	service *compare.Service
	results *in_mem.ResultStore
	labels  report.Labels
}

type CompareRouterOption func(*CompareRouter)

func WithLabels(labels report.Labels) CompareRouterOption {
	return func(r *CompareRouter) {
		r.labels = labels
	}
}

// WithResultStore keeps computed results so they can be exported later.
func WithResultStore(store *in_mem.ResultStore) CompareRouterOption {
	return func(r *CompareRouter) {
		r.results = store
	}
}

func NewCompareRouter(e *echo.Echo, service *compare.Service, opts ...CompareRouterOption) *CompareRouter {
	r := &CompareRouter{
		e:       e,
		service: service,
		labels:  report.DefaultLabels(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CompareRouter) Bind() {
	g := r.e.Group("/api")
	g.POST("/compare", r.compareHandler)
	g.GET("/compare/:id/export", r.exportHandler)
	g.GET("/formats", r.formatsHandler)
}

func (r *CompareRouter) exportEnabled() bool {
	return r.service.Options().EnableExport && r.results != nil
}

// compareHandler godoc
// @Summary Compare two code lists
// @Description Extracts codes from both uploaded files and reports shared and one-sided codes
// @Tags compare
// @Accept multipart/form-data
// @Produce json
// @Param first formData file false "First file (csv, txt, tsv, xlsx, xls, pdf, image when OCR is enabled)"
// @Param second formData file false "Second file"
// @Success 200 {object} dto.CompareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/compare [post]
func (r *CompareRouter) compareHandler(c echo.Context) error {
	first, err := formFile(c, firstField)
	if err != nil {
		return err
	}
	second, err := formFile(c, secondField)
	if err != nil {
		return err
	}

	var missing []string
	if first == nil {
		missing = append(missing, firstField)
	}
	if second == nil {
		missing = append(missing, secondField)
	}
	if len(missing) > 0 {
		return c.JSON(http.StatusOK, dto.NewPendingResponse(r.labels, missing))
	}

	firstUpload, closeFirst, err := open(first)
	if err != nil {
		return err
	}
	defer closeFirst()
	secondUpload, closeSecond, err := open(second)
	if err != nil {
		return err
	}
	defer closeSecond()

	res, err := r.service.Compare(c.Request().Context(), firstUpload, secondUpload)
	if errors.Is(err, compare.ErrMissingUpload) {
		return c.JSON(http.StatusOK, dto.NewPendingResponse(r.labels, []string{firstField, secondField}))
	}
	if err != nil {
		return err
	}

	id := uuid.Nil
	if r.exportEnabled() {
		id = r.results.Save(in_mem.Entry{
			FirstName:  first.Filename,
			SecondName: second.Filename,
			Labels:     r.labels,
			Result:     *res,
		})
	}

	return c.JSON(http.StatusOK, dto.NewCompareResponse(*res, r.labels, id))
}

// exportHandler godoc
// @Summary Export a comparison
// @Description Downloads one category of a stored comparison, one code per line
// @Tags compare
// @Produce plain
// @Param id path string true "Comparison id"
// @Param section query string false "Section to export" Enums(all, matches, first, second) default(all)
// @Success 200 {string} string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/compare/{id}/export [get]
func (r *CompareRouter) exportHandler(c echo.Context) error {
	if !r.exportEnabled() {
		return echo.NewHTTPError(http.StatusNotFound, "export is disabled")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid comparison id", err)
	}
	section, err := report.ParseSection(c.QueryParam("section"))
	if err != nil {
		return apperr.NewValidationWrap("invalid section", err)
	}

	entry, ok := r.results.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "comparison not found")
	}

	var buf bytes.Buffer
	if err := report.WriteExport(&buf, entry.Result, entry.Labels, section); err != nil {
		return fmt.Errorf("render export: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename(section)))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// formatsHandler godoc
// @Summary List accepted file extensions
// @Tags compare
// @Produce json
// @Success 200 {object} dto.FormatsResponse
// @Router /api/formats [get]
func (r *CompareRouter) formatsHandler(c echo.Context) error {
	ocr := r.service.Options().Extract.EnableOCR
	return c.JSON(http.StatusOK, dto.FormatsResponse{
		Extensions: extract.Extensions(ocr),
		OCR:        ocr,
	})
}

// formFile returns nil when the field is absent or the request carries no
// multipart body.
func formFile(c echo.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.NewValidationWrap(fmt.Sprintf("invalid %s upload", field), err)
	}
	if fh.Filename == "" {
		return nil, nil
	}
	return fh, nil
}

func open(fh *multipart.FileHeader) (compare.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return compare.Upload{}, nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	return compare.Upload{Name: fh.Filename, Body: f}, func() { _ = f.Close() }, nil
}
