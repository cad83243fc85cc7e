package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eliasgdev/price-manager-api/internal/application/pricemanager"
	"github.com/eliasgdev/price-manager-api/pkg/logger"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	UpdatePricesUC *pricemanager.UpdatePricesUseCase
	Log            *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	priceManager := app.Group("/price-manager")
	handler := NewPriceManagerHandler(deps.UpdatePricesUC, deps.Log)
	priceManager.Post("/upload-file-csv", handler.UploadFileCSV)
	priceManager.Put("/update-prices", handler.UpdatePrices)
}
