package enums

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

func (f ExportFormat) Extension() string {
	if f == ExportFormatJSON {
		return "json"
	}
	return "csv"
}

func (f ExportFormat) ContentType() string {
	if f == ExportFormatJSON {
		return "application/json"
	}
	return "text/csv"
}
