package pairing

import (
	"encoding/binary"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/AlexZinkM/pairing-cipher/internal/model"
)

const (
	pinLen          = 4
	amountLen       = 8
	recipientLenLen = 1
	// pin, outputs, fees, change and the recipient length byte
	transactionHeaderLen = pinLen + 3*amountLen + recipientLenLen
)

// TransactionInfoFromEncryptedBlob decrypts a second-factor blob with the
// pairing key and parses the transaction summary it carries.
func TransactionInfoFromEncryptedBlob(blob, pairingKey []byte) (*model.TransactionInfo, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: blob is empty", ErrInvalidBlob)
	}

	decrypted, err := DecryptData(blob, pairingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt transaction blob: %w", err)
	}
	defer clear(decrypted)

	return ParseTransactionInfo(decrypted, time.Now())
}

// ParseTransactionInfo parses a decrypted blob:
// pin(4) || outputs(8) || fees(8) || change(8) || len(1) || recipient(len) || trailing bytes.
// Amounts are unsigned big-endian satoshi.
func ParseTransactionInfo(data []byte, now time.Time) (*model.TransactionInfo, error) {
	if len(data) <= transactionHeaderLen {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidTransaction, len(data))
	}

	offset := 0
	pin := data[offset : offset+pinLen]
	offset += pinLen
	outputs := binary.BigEndian.Uint64(data[offset:])
	offset += amountLen
	fees := binary.BigEndian.Uint64(data[offset:])
	offset += amountLen
	change := binary.BigEndian.Uint64(data[offset:])
	offset += amountLen
	recipientLen := int(data[offset])
	offset += recipientLenLen

	if offset+recipientLen > len(data) {
		return nil, fmt.Errorf("%w: recipient needs %d bytes, %d left", ErrInvalidTransaction, recipientLen, len(data)-offset)
	}
	recipient := data[offset : offset+recipientLen]

	if !utf8.Valid(pin) {
		return nil, fmt.Errorf("%w: pin code is not utf-8", ErrInvalidTransaction)
	}
	if !utf8.Valid(recipient) {
		return nil, fmt.Errorf("%w: recipient is not utf-8", ErrInvalidTransaction)
	}
	if err := ValidateAddress(string(recipient)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	return &model.TransactionInfo{
		PinCode:          string(pin),
		RecipientAddress: string(recipient),
		OutputsAmount:    int64(outputs),
		FeesAmount:       int64(fees),
		ChangeAmount:     int64(change),
		TransactionDate:  now,
	}, nil
}
