// Package ingest extrai linhas (código, novo preço) de um arquivo CSV
// enviado pelo usuário. Erros de extração são erros de arquivo, não quebras
// de regra de negócio: qualquer linha inválida invalida a requisição antes
// de o motor de validação rodar.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
)

// ExtractOptions indica onde encontrar as duas colunas obrigatórias.
// A primeira linha do arquivo sempre traz os nomes das colunas; HasHeader
// controla apenas se essa linha também é processada como dado.
type ExtractOptions struct {
	HasHeader   bool
	CodeColumn  string
	PriceColumn string
}

// LineError é um problema de extração em uma linha específica.
type LineError struct {
	Line    string
	Message string
}

var (
	// ErrEmptyFile indica arquivo sem nenhuma linha útil.
	ErrEmptyFile = errors.New("O arquivo CSV está vazio.")
)

// ExtractRows percorre o CSV e devolve as linhas extraídas mais os erros de
// linha encontrados. Colunas além das duas esperadas são ignoradas. Erros de
// arquivo inteiro (vazio, colunas ausentes no cabeçalho) vêm no terceiro
// retorno.
func ExtractRows(data []byte, opts ExtractOptions) ([]entity.BatchRow, []LineError, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("ler cabeçalho: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	codeIdx := indexOf(header, opts.CodeColumn)
	priceIdx := indexOf(header, opts.PriceColumn)
	if codeIdx < 0 || priceIdx < 0 {
		return nil, nil, fmt.Errorf("Era esperado as colunas '%s' e '%s' na primeira linha do seu arquivo.",
			opts.CodeColumn, opts.PriceColumn)
	}

	var rows []entity.BatchRow
	var lineErrors []LineError

	// Sem cabeçalho, a primeira linha também é dado: reprocessa o registro já
	// lido antes de seguir com o resto do arquivo.
	if !opts.HasHeader {
		extractRecord(header, codeIdx, priceIdx, opts, &rows, &lineErrors)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("ler arquivo CSV: %w", err)
		}
		// FieldsPerRecord=-1 desliga a checagem do reader; a quantidade de
		// colunas é validada aqui para rejeitar a linha, não o arquivo.
		if len(record) != len(header) {
			lineErrors = append(lineErrors, LineError{
				Line:    strings.Join(record, ","),
				Message: "O número de colunas não está alinhado com os demais registros.",
			})
			continue
		}
		extractRecord(record, codeIdx, priceIdx, opts, &rows, &lineErrors)
	}

	return rows, lineErrors, nil
}

// extractRecord converte as duas colunas de interesse de um registro.
func extractRecord(record []string, codeIdx, priceIdx int, opts ExtractOptions, rows *[]entity.BatchRow, lineErrors *[]LineError) {
	rawCode := strings.TrimSpace(record[codeIdx])
	rawPrice := strings.TrimSpace(record[priceIdx])

	code, err := strconv.ParseInt(rawCode, 10, 64)
	if err != nil {
		*lineErrors = append(*lineErrors, LineError{
			Line:    strings.Join(record, ","),
			Message: numericMessage(opts.CodeColumn, rawCode),
		})
		return
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		*lineErrors = append(*lineErrors, LineError{
			Line:    strings.Join(record, ","),
			Message: numericMessage(opts.PriceColumn, rawPrice),
		})
		return
	}

	*rows = append(*rows, entity.BatchRow{Code: code, NewSalesPrice: price})
}

func numericMessage(column, value string) string {
	return fmt.Sprintf("Aguardava-se um valor numérico para '%s', porém foi recebido: '%s'", column, value)
}

func indexOf(fields []string, name string) int {
	for i, f := range fields {
		if f == name {
			return i
		}
	}
	return -1
}
