package internal

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// test secret published in the gateway integration docs
const testSecret = "sq7HjrUOBfKmC576ILgskD5srU870gJ7"

func TestDeriveOrderKeyDeterministic(t *testing.T) {
	encryptor := NewEncryptor(testSecret, "", "1200")

	first, err := encryptor.DeriveOrderKey()
	require.NoError(t, err)
	second, err := encryptor.DeriveOrderKey()
	require.NoError(t, err)
	require.Equal(t, first, second)

	raw, err := base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
	require.Len(t, raw, 8, "a 4-byte order pads to a single cipher block")
}

func TestDeriveOrderKeyBlockAlignment(t *testing.T) {
	// 12 bytes of order round up to two 8-byte blocks
	encryptor := NewEncryptor(testSecret, "", "123456789012")

	key, err := encryptor.DeriveOrderKey()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(key)
	require.NoError(t, err)
	require.Len(t, raw, 16)
}

func TestDeriveOrderKeyDependsOnOrder(t *testing.T) {
	first, err := NewEncryptor(testSecret, "", "1200").DeriveOrderKey()
	require.NoError(t, err)
	second, err := NewEncryptor(testSecret, "", "1201").DeriveOrderKey()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestDeriveOrderKeyRejectsBadSecret(t *testing.T) {
	_, err := NewEncryptor("%%% not base64 %%%", "params", "1200").DeriveOrderKey()
	require.Error(t, err)

	// decodes fine but is not a valid triple DES key length
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	_, err = NewEncryptor(short, "params", "1200").DeriveOrderKey()
	require.Error(t, err)
}

func TestDeriveOrderKeyRejectsEmptyOrder(t *testing.T) {
	_, err := NewEncryptor(testSecret, "params", "").DeriveOrderKey()
	require.Error(t, err)
}

func TestCreateSignatureDeterministic(t *testing.T) {
	first, err := NewEncryptor(testSecret, "eyJEU19NRVJDSEFOVF9BTU9VTlQiOiIxMDUwIn0=", "1200").CreateSignature()
	require.NoError(t, err)
	second, err := NewEncryptor(testSecret, "eyJEU19NRVJDSEFOVF9BTU9VTlQiOiIxMDUwIn0=", "1200").CreateSignature()
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
}

func TestCreateSignatureDependsOnInputs(t *testing.T) {
	base, err := NewEncryptor(testSecret, "parameters", "1200").CreateSignature()
	require.NoError(t, err)

	otherParams, err := NewEncryptor(testSecret, "parameters2", "1200").CreateSignature()
	require.NoError(t, err)
	require.NotEqual(t, base, otherParams)

	otherOrder, err := NewEncryptor(testSecret, "parameters", "1201").CreateSignature()
	require.NoError(t, err)
	require.NotEqual(t, base, otherOrder)
}
