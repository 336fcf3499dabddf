package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hance08/netpay/internal/constants"
)

// EncodeText renders encoded bytes in one of the transport formats.
func EncodeText(data []byte, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case constants.FormatRaw:
		return data, nil
	case constants.FormatHex:
		return []byte(hex.EncodeToString(data)), nil
	case constants.FormatBase64:
		return []byte(base64.StdEncoding.EncodeToString(data)), nil
	default:
		return nil, fmt.Errorf("unknown output format '%s' (must be raw, hex, base64)", format)
	}
}

// DecodeText is the inverse of EncodeText. Surrounding whitespace in the
// textual formats is ignored.
func DecodeText(text []byte, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case constants.FormatRaw:
		return text, nil
	case constants.FormatHex:
		data, err := hex.DecodeString(strings.TrimSpace(string(text)))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	case constants.FormatBase64:
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(text)))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 input: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown input format '%s' (must be raw, hex, base64)", format)
	}
}
