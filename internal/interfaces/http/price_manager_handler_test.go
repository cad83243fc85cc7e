package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliasgdev/price-manager-api/internal/application/dto"
	"github.com/eliasgdev/price-manager-api/internal/application/pricemanager"
	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
	"github.com/eliasgdev/price-manager-api/internal/domain/pricing"
	"github.com/eliasgdev/price-manager-api/internal/domain/repository"
	apphttp "github.com/eliasgdev/price-manager-api/internal/interfaces/http"
	"github.com/eliasgdev/price-manager-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalogRepo struct {
	products []entity.Product
	links    []entity.PackLink
	err      error
}

func (f *fakeCatalogRepo) FetchForCodes(_ context.Context, _ []int64) ([]entity.Product, []entity.PackLink, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.products, f.links, nil
}

type fakeTxRunner struct {
	applied []pricing.PriceUpdate
	runs    int
}

type fakePriceRepo struct{ tx *fakeTxRunner }

func (f *fakePriceRepo) UpdatePrices(_ context.Context, updates []pricing.PriceUpdate) error {
	f.tx.applied = append(f.tx.applied, updates...)
	return nil
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(prices repository.PriceRepository) error) error {
	f.runs++
	return fn(&fakePriceRepo{tx: f})
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// buildTestApp monta uma aplicação Fiber com o router real e repositórios
// fake em memória.
func buildTestApp(catalog *fakeCatalogRepo) (*fiber.App, *fakeTxRunner) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	tx := &fakeTxRunner{}
	uc := pricemanager.NewUpdatePricesUseCase(catalog, tx, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{UpdatePricesUC: uc, Log: log})
	return app, tx
}

func defaultCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		products: []entity.Product{
			{Code: 1, Name: "arroz", CostPrice: d("4.00"), SalesPrice: d("8.00")},
		},
	}
}

// csvRequest monta um POST multipart para /price-manager/upload-file-csv.
func csvRequest(t *testing.T, filename, content, query string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/price-manager/upload-file-csv?"+query, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBatchResult(t *testing.T, resp *http.Response) dto.BatchResultResponse {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.BatchResultResponse
	require.NoError(t, json.Unmarshal(raw, &out), "corpo inesperado: %s", raw)
	return out
}

const csvQuery = "fileHasHeader=true&nameColumnCode=codigo&nameColumnNewPrice=preco"

// ──────────────────────────────────────────────────────────────────────────────
// POST /price-manager/upload-file-csv
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadFileCSV_QueryObrigatoriaAusente(t *testing.T) {
	app, _ := buildTestApp(defaultCatalog())

	req := csvRequest(t, "precos.csv", "codigo,preco\n1,8.00\n", "nameColumnCode=codigo&nameColumnNewPrice=preco")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadFileCSV_ArquivoAusente(t *testing.T) {
	app, _ := buildTestApp(defaultCatalog())

	req := httptest.NewRequest(http.MethodPost, "/price-manager/upload-file-csv?"+csvQuery, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadFileCSV_ExtensaoErrada(t *testing.T) {
	app, _ := buildTestApp(defaultCatalog())

	req := csvRequest(t, "precos.xlsx", "codigo,preco\n1,8.00\n", csvQuery)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadFileCSV_LinhaInvalidaRejeitaRequisicao(t *testing.T) {
	app, tx := buildTestApp(defaultCatalog())

	req := csvRequest(t, "precos.csv", "codigo,preco\n1,caro\n", csvQuery)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, tx.runs, "erro de extração não chega ao motor")
}

func TestUploadFileCSV_LoteValido(t *testing.T) {
	app, tx := buildTestApp(defaultCatalog())

	req := csvRequest(t, "precos.csv", "codigo,preco\n1,8.50\n", csvQuery)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBatchResult(t, resp)
	assert.True(t, out.Updated)
	require.Len(t, out.Results, 1)
	assert.Equal(t, int64(1), out.Results[0].Code)
	assert.Equal(t, "arroz", out.Results[0].Name)
	assert.Empty(t, out.Results[0].MsgError)
	require.Len(t, tx.applied, 1)
	assert.True(t, tx.applied[0].SalesPrice.Equal(d("8.50")))
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /price-manager/update-prices
// ──────────────────────────────────────────────────────────────────────────────

func putRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/price-manager/update-prices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUpdatePrices_CorpoSemLinhas(t *testing.T) {
	app, _ := buildTestApp(defaultCatalog())

	resp, err := app.Test(putRequest(`{"rows":[]}`), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePrices_LinhaRejeitadaRespondeOK(t *testing.T) {
	app, tx := buildTestApp(defaultCatalog())

	resp, err := app.Test(putRequest(`{"rows":[{"code":999,"new_sales_price":"5.00"}]}`), -1)
	require.NoError(t, err)

	// Quebra de regra é resultado, não falha de requisição.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBatchResult(t, resp)
	assert.False(t, out.Updated)
	require.Len(t, out.Results, 1)
	assert.Equal(t, int64(999), out.Results[0].Code)
	assert.Contains(t, out.Results[0].MsgError, "não corresponde a nenhum registro")
	assert.Equal(t, 0, tx.runs)
}

func TestUpdatePrices_LoteMistoNaoPersisteNada(t *testing.T) {
	app, tx := buildTestApp(defaultCatalog())

	resp, err := app.Test(putRequest(`{"rows":[
		{"code":1,"new_sales_price":"8.00"},
		{"code":999,"new_sales_price":"5.00"}
	]}`), -1)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBatchResult(t, resp)
	assert.False(t, out.Updated)
	require.Len(t, out.Results, 2)
	assert.Empty(t, out.Results[0].MsgError)
	assert.NotEmpty(t, out.Results[1].MsgError)
	assert.Equal(t, 0, tx.runs, "tudo-ou-nada: lote misto não escreve")
}

func TestUpdatePrices_FalhaDeCatalogoResponde500(t *testing.T) {
	app, _ := buildTestApp(&fakeCatalogRepo{err: errors.New("connection refused")})

	resp, err := app.Test(putRequest(`{"rows":[{"code":1,"new_sales_price":"8.00"}]}`), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	defer resp.Body.Close()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "STORAGE_UNAVAILABLE", out.Code)
}
