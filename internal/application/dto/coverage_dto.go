package dto

// CoverageCSVRow fila del CSV de facturas de la obra social.
// El orden de los campos es el orden de las columnas; los tags son los encabezados.
// Todos los valores ya vienen formateados (fecha DD/MM/YYYY, importes con coma decimal).
type CoverageCSVRow struct {
	IDComprobante    string `csv:"ID Comprobante"`
	Sucursal         string `csv:"Sucursal"`
	Emision          string `csv:"Fecha Emisión"`
	Tipo             string `csv:"Tipo"`
	Letra            string `csv:"Letra"`
	PuntoVta         string `csv:"Punto de Venta"`
	Numero           string `csv:"Número"`
	TotalCobertura   string `csv:"Total Cobertura"`
	TotalComprobante string `csv:"Total Comprobante"`
	IDObSoc          string `csv:"Obra Social"`
}

// CoverageQuery parámetros de consulta de los endpoints /consulta.
type CoverageQuery struct {
	Mes string `query:"mes"`
}
