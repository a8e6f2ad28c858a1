// Triple-DES CBC from the command line.
// Usage: go run ./cmd/tdes encrypt|decrypt [-k1 hex -k2 hex -k3 hex] [-iv hex] [-raw] <hex>
// Missing keys are read from the terminal without echo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/AlexZinkM/pairing-cipher/internal/common"
	"github.com/AlexZinkM/pairing-cipher/internal/config"
	"github.com/AlexZinkM/pairing-cipher/internal/crypto"
)

// secretReader reads a key that was not given on the command line.
type secretReader func(prompt string) ([]byte, error)

func main() {
	out, err := run(os.Args[1:], config.ReadSecret, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func run(args []string, readSecret secretReader, stderr io.Writer) (string, error) {
	if len(args) == 0 {
		return "", errors.New("usage: tdes encrypt|decrypt [-k1 hex -k2 hex -k3 hex] [-iv hex] [-raw] <hex>")
	}
	mode := args[0]
	if mode != "encrypt" && mode != "decrypt" {
		return "", fmt.Errorf("unknown command %q: want encrypt or decrypt", mode)
	}

	fs := flag.NewFlagSet("tdes "+mode, flag.ContinueOnError)
	fs.SetOutput(stderr)
	k1 := fs.String("k1", "", "key segment 1 (hex, 8 bytes)")
	k2 := fs.String("k2", "", "key segment 2 (hex, 8 bytes)")
	k3 := fs.String("k3", "", "key segment 3 (hex, 8 bytes)")
	ivHex := fs.String("iv", "", "initialization vector (hex, 8 bytes), all zero by default")
	raw := fs.Bool("raw", false, "no padding, input must be block aligned")
	if err := fs.Parse(args[1:]); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", errors.New("expected exactly one hex argument")
	}
	data, err := common.DataFromBase16(fs.Arg(0))
	if err != nil {
		return "", err
	}

	segments := make([][]byte, 3)
	for i, s := range []*string{k1, k2, k3} {
		if segments[i], err = keySegment(i+1, *s, readSecret); err != nil {
			return "", err
		}
		defer clear(segments[i])
	}

	var opts []crypto.Option
	if *ivHex != "" {
		iv, err := common.DataFromBase16(*ivHex)
		if err != nil {
			return "", fmt.Errorf("iv: %w", err)
		}
		opts = append(opts, crypto.WithIV(iv))
	}

	var result []byte
	switch {
	case *raw:
		keys, err := crypto.NewKeySet(segments[0], segments[1], segments[2])
		if err != nil {
			return "", err
		}
		if mode == "encrypt" {
			result, err = crypto.TripleDESCBCEncryptBlocks(data, keys, opts...)
		} else {
			result, err = crypto.TripleDESCBCDecryptBlocks(data, keys, opts...)
		}
		if err != nil {
			return "", err
		}
	case mode == "encrypt":
		result, err = crypto.TripleDESCBCEncrypt(data, segments[0], segments[1], segments[2], opts...)
	default:
		result, err = crypto.TripleDESCBCDecrypt(data, segments[0], segments[1], segments[2], opts...)
	}
	if err != nil {
		return "", err
	}
	return common.Base16FromData(result), nil
}

func keySegment(n int, value string, readSecret secretReader) ([]byte, error) {
	if value == "" {
		secret, err := readSecret(fmt.Sprintf("Enter key%d (hex): ", n))
		if err != nil {
			return nil, err
		}
		value = string(secret)
		clear(secret)
	}
	key, err := common.DataFromBase16(value)
	if err != nil {
		return nil, fmt.Errorf("key%d: %w", n, err)
	}
	return key, nil
}
