package constants

const (
	AppName   = "tally"
	EnvPrefix = "TALLY"
)

// Input columns
const (
	ColumnType   = "type"
	ColumnClient = "client"
	ColumnTx     = "tx"
	ColumnAmount = "amount"
)

// Output formats
const (
	FormatCSV   = "csv"
	FormatTable = "table"
)

var OutputHeader = []string{"client", "available", "held", "total", "locked"}
