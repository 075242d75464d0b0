package internal

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// Encryptor implements the gateway signature scheme: the merchant secret
// encrypts the order number with triple DES to derive a per-order key, and
// that key signs the serialized parameters with HMAC-SHA256. Both steps are
// deterministic because the gateway recomputes the signature independently.
type Encryptor struct {
	secret     string // merchant secret encoded with Base64, 24 bytes decoded
	parameters string // serialized request parameters to sign
	order      string // order number to be encrypted
}

func NewEncryptor(secret string, parameters string, order string) *Encryptor {
	return &Encryptor{
		secret:     secret,
		parameters: parameters,
		order:      order,
	}
}

// DeriveOrderKey encrypts the order number with the merchant secret and
// returns the per-order signing key encoded with Base64. The zero IV and zero
// padding are mandated by the gateway protocol; do not reuse this as a
// general encryption primitive.
func (e *Encryptor) DeriveOrderKey() (string, error) {

	key, err := base64.StdEncoding.DecodeString(e.secret)
	if err != nil {
		return "", fmt.Errorf("decode secret: %v", err)
	}

	encrypted, err := e.encrypt3DES(e.order, key)
	if err != nil {
		return "", fmt.Errorf("encrypt3DES: %v", err)
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// CreateSignature derives the order key and computes the HMAC-SHA256 over the
// serialized parameters with it, returning the result encoded with Base64.
func (e *Encryptor) CreateSignature() (string, error) {

	orderKey, err := e.DeriveOrderKey()
	if err != nil {
		return "", err
	}
	key, err := base64.StdEncoding.DecodeString(orderKey)
	if err != nil {
		return "", fmt.Errorf("decode order key: %v", err)
	}

	hash := e.mac256(e.parameters, key)

	return base64.StdEncoding.EncodeToString(hash), nil
}

func (e *Encryptor) encrypt3DES(plainText string, key []byte) ([]byte, error) {
	if plainText == "" {
		return nil, errors.New("plainText cannot be empty")
	}

	toEncryptArray := []byte(plainText)

	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		return nil, err
	}

	// fixed zero IV required by the protocol
	salt := []byte{0, 0, 0, 0, 0, 0, 0, 0}

	// zero-pad to the next cipher block boundary
	padding := block.BlockSize() - len(toEncryptArray)%block.BlockSize()
	addText := bytes.Repeat([]byte{0}, padding)
	toEncryptArray = append(toEncryptArray, addText...)

	ciphertext := make([]byte, len(toEncryptArray))

	mode := cipher.NewCBCEncrypter(block, salt)
	mode.CryptBlocks(ciphertext, toEncryptArray)

	return ciphertext, nil
}

func (e *Encryptor) mac256(message string, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}
