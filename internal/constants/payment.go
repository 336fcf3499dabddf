package constants

const (
	// RecordSize is the width of one encoded payment: payer(1) amount(4) payee(1).
	RecordSize = 6

	FormatRaw    = "raw"
	FormatHex    = "hex"
	FormatBase64 = "base64"

	DefaultCurrency = "USD"
)
