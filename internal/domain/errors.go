package domain

import "errors"

// Erros de infraestrutura do lote (fatais para a requisição inteira).
// As quebras de regra por linha não usam estes erros: elas viajam no
// resultado de cada linha e nunca abortam o lote.
var (
	ErrStorageUnavailable = errors.New("não foi possível consultar os registros")
	ErrPersistenceFailed  = errors.New("erro ao atualizar os registros")
)
