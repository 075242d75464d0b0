package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseCodeMessageAuthorizedBand(t *testing.T) {
	message, ok := ResponseCodeMessage("0")
	require.True(t, ok)
	require.Equal(t, authorizedMessage, message)

	// 50 has no entry of its own but falls in the authorized band
	message, ok = ResponseCodeMessage("50")
	require.True(t, ok)
	require.Equal(t, authorizedMessage, message)
}

func TestResponseCodeMessageTableHit(t *testing.T) {
	message, ok := ResponseCodeMessage(" 0900 ")
	require.True(t, ok)
	require.Equal(t, "Transacción autorizada para devoluciones y confirmaciones", message)

	message, ok = ResponseCodeMessage("9915")
	require.True(t, ok)
	require.Equal(t, "A petición del usuario se ha cancelado el pago", message)
}

func TestResponseCodeMessageMiss(t *testing.T) {
	for _, code := range []string{"-5", "abc", "", "  ", "12.5", "123"} {
		_, ok := ResponseCodeMessage(code)
		require.False(t, ok, "code %q", code)
	}
}

func TestSISErrorMessage(t *testing.T) {
	message, ok := SISErrorMessage("SIS0042")
	require.True(t, ok)
	require.Equal(t, "La firma enviada no es correcta", message)

	message, ok = SISErrorMessage(" SIS0008 ")
	require.True(t, ok)
	require.Equal(t, "Error falta Ds_Merchant_MerchantCode", message)

	_, ok = SISErrorMessage("SIS9999")
	require.False(t, ok)
	_, ok = SISErrorMessage("")
	require.False(t, ok)
}
