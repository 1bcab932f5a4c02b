package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/code-comparator/internal/apperr"
	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/dto"
	"github.com/DjordjeVuckovic/code-comparator/internal/report"
	"github.com/DjordjeVuckovic/code-comparator/internal/storage/in_mem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type file struct {
	field, name, body string
}

func newTestEcho(opts compare.Options, routerOpts ...CompareRouterOption) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewCompareRouter(e, compare.NewService(opts), routerOpts...).Bind()
	return e
}

func multipartRequest(t *testing.T, files ...file) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/compare", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dto.CompareResponse {
	t.Helper()

	var resp dto.CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCompareHandler_RoundTrip(t *testing.T) {
	store := in_mem.NewResultStore(4)
	e := newTestEcho(compare.DefaultOptions(), WithResultStore(store))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, multipartRequest(t,
		file{"first", "seamaster.csv", "ABC1234\nXYZ9999\n"},
		file{"second", "trucker.txt", "ABC1234\n"},
	))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.True(t, resp.Completed)
	assert.Equal(t, []string{"ABC1234"}, resp.Matches)
	assert.Equal(t, []string{"XYZ9999"}, resp.OnlyInFirst)
	assert.Equal(t, []string{}, resp.OnlyInSecond)
	require.NotNil(t, resp.Counts)
	assert.Equal(t, dto.Counts{Matches: 1, OnlyInFirst: 1, OnlyInSecond: 0}, *resp.Counts)
	require.NotNil(t, resp.ID)
	assert.Equal(t, 1, store.Len())
}

func TestCompareHandler_IdenticalFilesKeepEmptyLists(t *testing.T) {
	e := newTestEcho(compare.DefaultOptions())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, multipartRequest(t,
		file{"first", "a.csv", "ABC1234\n"},
		file{"second", "b.txt", "ABC1234\n"},
	))

	require.Equal(t, http.StatusOK, rec.Code)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.JSONEq(t, `["ABC1234"]`, string(raw["matches"]))
	require.Contains(t, raw, "onlyInFirst")
	require.Contains(t, raw, "onlyInSecond")
	assert.JSONEq(t, `[]`, string(raw["onlyInFirst"]))
	assert.JSONEq(t, `[]`, string(raw["onlyInSecond"]))
}

func TestCompareHandler_EmptyUploadIsAnEmptySet(t *testing.T) {
	for _, name := range []string{"a.xlsx", "a.xls", "a.pdf", "a.csv"} {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho(compare.DefaultOptions())
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, multipartRequest(t,
				file{"first", name, ""},
				file{"second", "b.txt", "ABC1234\n"},
			))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			resp := decode(t, rec)
			assert.True(t, resp.Completed)
			assert.Equal(t, []string{}, resp.Matches)
			assert.Equal(t, []string{"ABC1234"}, resp.OnlyInSecond)
		})
	}
}

func TestCompareHandler_MissingUploadIsNotAnError(t *testing.T) {
	e := newTestEcho(compare.DefaultOptions())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, multipartRequest(t, file{"first", "seamaster.csv", "ABC1234\n"}))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Completed)
	assert.Equal(t, []string{"second"}, resp.Missing)
	assert.Nil(t, resp.Counts)
	assert.Equal(t, []string{}, resp.OnlyInFirst)
}

func TestCompareHandler_NoMultipartBody(t *testing.T) {
	e := newTestEcho(compare.DefaultOptions())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/compare", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"first", "second"}, decode(t, rec).Missing)
}

func TestCompareHandler_UnsupportedFormat(t *testing.T) {
	e := newTestEcho(compare.DefaultOptions())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, multipartRequest(t,
		file{"first", "seamaster.docx", "ABC1234"},
		file{"second", "trucker.txt", "ABC1234"},
	))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file format")
}

func TestCompareHandler_CorruptFile(t *testing.T) {
	e := newTestEcho(compare.DefaultOptions())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, multipartRequest(t,
		file{"first", "seamaster.xlsx", "definitely not a workbook"},
		file{"second", "trucker.txt", "ABC1234"},
	))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "seamaster.xlsx")
}

func TestExportHandler(t *testing.T) {
	store := in_mem.NewResultStore(4)
	labels := report.Labels{First: "Seamaster Report", Second: "Trucker Report"}
	e := newTestEcho(compare.DefaultOptions(), WithResultStore(store), WithLabels(labels))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t,
		file{"first", "seamaster.csv", "ABC1234\nXYZ9999\n"},
		file{"second", "trucker.txt", "ABC1234\n"},
	))
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode(t, rec).ID.String()

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/compare/"+id+"/export?section=first", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "XYZ9999\n", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "only_in_first.txt")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/compare/"+id+"/export", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Matching codes (1)\nABC1234\n"))
	assert.Contains(t, rec.Body.String(), "Only in Trucker Report (0)\nNo differences\n")
}

func TestExportHandler_Errors(t *testing.T) {
	e := newTestEcho(compare.DefaultOptions(), WithResultStore(in_mem.NewResultStore(4)))

	cases := map[string]int{
		"/api/compare/not-a-uuid/export":                                     http.StatusBadRequest,
		"/api/compare/9b2f7a1e-0c55-4d3e-9a57-3f1b9d6c2e10/export":           http.StatusNotFound,
		"/api/compare/9b2f7a1e-0c55-4d3e-9a57-3f1b9d6c2e10/export?section=x": http.StatusBadRequest,
	}
	for url, code := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, code, rec.Code, url)
	}
}

func TestExportHandler_Disabled(t *testing.T) {
	opts := compare.DefaultOptions()
	opts.EnableExport = false
	store := in_mem.NewResultStore(4)
	e := newTestEcho(opts, WithResultStore(store))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t,
		file{"first", "a.csv", "A1\n"},
		file{"second", "b.csv", "A1\n"},
	))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec).ID)
	assert.Equal(t, 0, store.Len())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/compare/9b2f7a1e-0c55-4d3e-9a57-3f1b9d6c2e10/export", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormatsHandler(t *testing.T) {
	e := newTestEcho(compare.DefaultOptions())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/formats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.FormatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OCR)
	assert.Contains(t, resp.Extensions, ".pdf")
	assert.NotContains(t, resp.Extensions, ".png")
}
