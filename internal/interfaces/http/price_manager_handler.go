package http

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/eliasgdev/price-manager-api/internal/application/dto"
	"github.com/eliasgdev/price-manager-api/internal/application/ingest"
	"github.com/eliasgdev/price-manager-api/internal/application/pricemanager"
	"github.com/eliasgdev/price-manager-api/internal/domain"
	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
	"github.com/eliasgdev/price-manager-api/pkg/logger"
)

// PriceManagerHandler trata as requisições HTTP do gestor de preços.
// Quebras de regra por linha respondem 200 com o veredito no corpo; 4xx é
// reservado para requisição malformada e 500 para falha de infraestrutura.
type PriceManagerHandler struct {
	uc  *pricemanager.UpdatePricesUseCase
	log *logger.Logger
}

// NewPriceManagerHandler constrói o handler.
func NewPriceManagerHandler(uc *pricemanager.UpdatePricesUseCase, log *logger.Logger) *PriceManagerHandler {
	return &PriceManagerHandler{uc: uc, log: log}
}

// UploadFileCSV godoc
// @Summary      Validar e aplicar preços a partir de um arquivo CSV
// @Tags         price-manager
// @Accept       multipart/form-data
// @Produce      json
// @Param        file                stream  formData  file  true  "Arquivo CSV"
// @Param        fileHasHeader       query   string    true  "true/false: a primeira linha é cabeçalho"
// @Param        nameColumnCode      query   string    true  "Nome da coluna do código do produto"
// @Param        nameColumnNewPrice  query   string    true  "Nome da coluna do novo preço"
// @Success      200  {object}  dto.BatchResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /price-manager/upload-file-csv [post]
func (h *PriceManagerHandler) UploadFileCSV(c *fiber.Ctx) error {
	hasHeaderRaw := c.Query("fileHasHeader")
	if hasHeaderRaw != "true" && hasHeaderRaw != "false" {
		return badRequest(c, "MISSING_QUERY", "A requisição deve incluir uma query chamada 'fileHasHeader' com um valor associado.")
	}
	codeColumn := c.Query("nameColumnCode")
	if codeColumn == "" {
		return badRequest(c, "MISSING_QUERY", "A requisição deve incluir uma query chamada 'nameColumnCode' com um valor associado.")
	}
	priceColumn := c.Query("nameColumnNewPrice")
	if priceColumn == "" {
		return badRequest(c, "MISSING_QUERY", "A requisição deve incluir uma query chamada 'nameColumnNewPrice' com um valor associado.")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "O Arquivo CSV não foi encontrado.")
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		return badRequest(c, "BAD_EXTENSION", "O arquivo não possui a extensão esperada '.csv'.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "MISSING_FILE", "O Arquivo CSV não foi encontrado.")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return badRequest(c, "MISSING_FILE", "O Arquivo CSV não foi encontrado.")
	}

	rows, lineErrors, err := ingest.ExtractRows(data, ingest.ExtractOptions{
		HasHeader:   hasHeaderRaw == "true",
		CodeColumn:  codeColumn,
		PriceColumn: priceColumn,
	})
	if err != nil {
		return badRequest(c, "BAD_FILE", err.Error())
	}
	// Erros de extração invalidam a requisição inteira, listados linha a
	// linha, antes de o motor de validação rodar.
	if len(lineErrors) > 0 {
		var sb strings.Builder
		for _, le := range lineErrors {
			fmt.Fprintf(&sb, "Erro: %s Linha: %s\n", le.Message, le.Line)
		}
		return badRequest(c, "BAD_ROWS", sb.String())
	}

	return h.process(c, rows)
}

// UpdatePrices godoc
// @Summary      Validar e aplicar preços a partir de linhas já extraídas
// @Tags         price-manager
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePricesRequest  true  "Linhas (código, novo preço)"
// @Success      200  {object}  dto.BatchResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /price-manager/update-prices [put]
func (h *PriceManagerHandler) UpdatePrices(c *fiber.Ctx) error {
	var in dto.UpdatePricesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if len(in.Rows) == 0 {
		return badRequest(c, "VALIDATION", "Deve ser informando o array de produtos.")
	}
	return h.process(c, in.ToBatchRows())
}

// process executa o pipeline do lote e mapeia erros de infraestrutura.
func (h *PriceManagerHandler) process(c *fiber.Ctx, rows []entity.BatchRow) error {
	batchID := uuid.New().String()

	result, err := h.uc.ProcessBatch(c.UserContext(), batchID, rows)
	if err != nil {
		h.log.Error().Err(err).Str("batch_id", batchID).Msg("falha de infraestrutura no lote")
		code := "STORAGE_UNAVAILABLE"
		if errors.Is(err, domain.ErrPersistenceFailed) {
			code = "PERSISTENCE_FAILED"
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
	}

	return c.JSON(dto.FromOutcomes(result.Outcomes, result.Updated))
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
