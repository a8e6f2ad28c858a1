package pairing

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecipient = "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2"

// buildTransactionBlob lays out a decrypted blob and zero-fills it to a block boundary.
func buildTransactionBlob(pin string, outputs, fees, change uint64, recipient string) []byte {
	data := []byte(pin)
	data = binary.BigEndian.AppendUint64(data, outputs)
	data = binary.BigEndian.AppendUint64(data, fees)
	data = binary.BigEndian.AppendUint64(data, change)
	data = append(data, byte(len(recipient)))
	data = append(data, recipient...)
	for len(data)%8 != 0 {
		data = append(data, 0)
	}
	return data
}

func TestTransactionInfoFromEncryptedBlob(t *testing.T) {
	pairingKey := fromHex(t, "73a521e635b622506a67ea3dd8ec8c3d")
	plain := buildTransactionBlob("1234", 150000000, 10000, 5000, testRecipient)

	blob, err := EncryptData(plain, pairingKey)
	require.NoError(t, err)

	before := time.Now()
	info, err := TransactionInfoFromEncryptedBlob(blob, pairingKey)
	require.NoError(t, err)

	assert.Equal(t, "1234", info.PinCode)
	assert.Equal(t, testRecipient, info.RecipientAddress)
	assert.Equal(t, int64(150000000), info.OutputsAmount)
	assert.Equal(t, int64(10000), info.FeesAmount)
	assert.Equal(t, int64(5000), info.ChangeAmount)
	assert.False(t, info.TransactionDate.Before(before))
}

func TestTransactionInfoEmptyBlob(t *testing.T) {
	info, err := TransactionInfoFromEncryptedBlob(nil, nil)
	require.ErrorIs(t, err, ErrInvalidBlob)
	assert.Nil(t, info)
}

func TestParseTransactionInfo(t *testing.T) {
	now := time.Date(2015, 2, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name: "valid_p2sh",
			data: buildTransactionBlob("0000", 1, 2, 3, "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"),
		},
		{
			name:    "header_only",
			data:    make([]byte, transactionHeaderLen),
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "recipient_overflows",
			data:    append(buildTransactionBlob("1234", 1, 2, 3, "")[:transactionHeaderLen-1], 0xff, 'x'),
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "bad_checksum",
			data:    buildTransactionBlob("1234", 1, 2, 3, "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN3"),
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "pin_not_utf8",
			data:    buildTransactionBlob("\xff\xfe12", 1, 2, 3, testRecipient),
			wantErr: ErrInvalidTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseTransactionInfo(tt.data, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, info)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now, info.TransactionDate)
		})
	}
}

func TestValidateAddress(t *testing.T) {
	for _, good := range []string{testRecipient, "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"} {
		assert.NoError(t, ValidateAddress(good), good)
	}
	for _, bad := range []string{"", "0OIl", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN3", "1111111111"} {
		assert.ErrorIs(t, ValidateAddress(bad), ErrInvalidAddress, bad)
	}
}
