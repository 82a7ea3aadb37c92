package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CoverageInvoice es la proyección de solo lectura de una factura (factcabecera)
// cubierta por una obra social (factcoberturas). Los nombres JSON respetan las
// columnas originales porque así los consumen los clientes existentes.
type CoverageInvoice struct {
	IDComprobante    int64           `json:"IDComprobante"`
	Sucursal         int             `json:"Sucursal"`
	Emision          time.Time       `json:"Emision"`
	Tipo             string          `json:"Tipo"`
	Letra            string          `json:"Letra"`
	PuntoVta         int             `json:"PuntoVta"`
	Numero           int64           `json:"Numero"`
	TotalCobertura   decimal.Decimal `json:"TotalCobertura"`
	TotalComprobante decimal.Decimal `json:"TotalComprobante"`
	IDObSoc          string          `json:"IDObSoc"`
}
