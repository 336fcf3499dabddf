// Package codec implements the fixed-width wire format for payment lists.
//
// Every payment occupies RecordSize bytes, big-endian:
//
//	byte 0     payer index (uint8)
//	bytes 1-4  amount in cents (int32, big-endian)
//	byte 5     payee index (uint8)
//
// A list is the concatenation of its records in emission order, with no
// header or length prefix. An empty list encodes to zero bytes.
package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/hance08/netpay/internal/constants"
	"github.com/hance08/netpay/internal/model"
)

const RecordSize = constants.RecordSize

var byteOrder = binary.BigEndian

// Encode serializes payments into consecutive fixed-width records.
func Encode(payments []model.Payment) []byte {
	buf := make([]byte, 0, len(payments)*RecordSize)
	for _, p := range payments {
		buf = AppendPayment(buf, p)
	}
	return buf
}

// AppendPayment appends a single record to buf.
func AppendPayment(buf []byte, p model.Payment) []byte {
	buf = append(buf, p.Payer)
	buf = byteOrder.AppendUint32(buf, uint32(p.Amount))
	return append(buf, p.Payee)
}

// Decode splits data into records. The length must be a multiple of RecordSize.
func Decode(data []byte) ([]model.Payment, error) {
	if len(data)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			model.ErrMalformedEncoding, len(data), RecordSize)
	}

	payments := make([]model.Payment, 0, len(data)/RecordSize)
	for off := 0; off < len(data); off += RecordSize {
		rec := data[off : off+RecordSize]
		payments = append(payments, model.Payment{
			Payer:  rec[0],
			Amount: int32(byteOrder.Uint32(rec[1:5])),
			Payee:  rec[5],
		})
	}
	return payments, nil
}

// Render returns one "<payer>: <amount> -> <payee>" line per payment.
func Render(payments []model.Payment) []string {
	lines := make([]string, 0, len(payments))
	for _, p := range payments {
		lines = append(lines, p.String())
	}
	return lines
}
