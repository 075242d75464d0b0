package internal

import (
	"math"
	"sispay/entity"
	"testing"

	"github.com/stretchr/testify/require"
)

func validInput() *entity.PaymentInput {
	return &entity.PaymentInput{
		Amount:          10.5,
		MerchantCode:    "999008881",
		TransactionType: "0",
		Order:           "123456789012",
	}
}

func TestFormatParamsMinimal(t *testing.T) {
	params, err := FormatParams(validInput())
	require.NoError(t, err)

	require.Equal(t, "1050", params.Get(entity.FieldAmount))
	require.Equal(t, "978", params.Get(entity.FieldCurrency))
	require.Equal(t, "1", params.Get(entity.FieldTerminal))
	require.Equal(t, "123456789012", params.Get(entity.FieldOrder))
	require.Equal(t, "999008881", params.Get(entity.FieldMerchantCode))
	require.Equal(t, "0", params.Get(entity.FieldTransactionType))
}

func TestFormatParamsValidation(t *testing.T) {
	cases := []struct {
		name   string
		modify func(input *entity.PaymentInput)
	}{
		{"negative amount", func(input *entity.PaymentInput) { input.Amount = -1 }},
		{"amount NaN", func(input *entity.PaymentInput) { input.Amount = math.NaN() }},
		{"amount infinite", func(input *entity.PaymentInput) { input.Amount = math.Inf(1) }},
		{"missing order", func(input *entity.PaymentInput) { input.Order = "" }},
		{"missing merchant code", func(input *entity.PaymentInput) { input.MerchantCode = "" }},
		{"missing transaction type", func(input *entity.PaymentInput) { input.TransactionType = "" }},
		{"unsupported currency", func(input *entity.PaymentInput) { input.Currency = "XXX" }},
		{"amount over protocol limit", func(input *entity.PaymentInput) { input.Amount = 1e13 }},
		{"expiry too short", func(input *entity.PaymentInput) { input.ExpiryDate = "251" }},
		{"expiry not numeric", func(input *entity.PaymentInput) { input.ExpiryDate = "25ab" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := validInput()
			c.modify(input)
			_, err := FormatParams(input)
			require.Error(t, err)
		})
	}
}

func TestFormatParamsUnsupportedCurrencyNamesCode(t *testing.T) {
	input := validInput()
	input.Currency = "XXX"
	_, err := FormatParams(input)
	require.Error(t, err)
	require.Contains(t, err.Error(), "XXX")
}

func TestFormatParamsCurrencyMultiplier(t *testing.T) {
	input := validInput()
	input.Currency = "JPY"
	input.Amount = 1050
	params, err := FormatParams(input)
	require.NoError(t, err)
	require.Equal(t, "1050", params.Get(entity.FieldAmount))
	require.Equal(t, "392", params.Get(entity.FieldCurrency))
}

func TestFormatParamsAmountFloored(t *testing.T) {
	input := validInput()
	input.Amount = 10.559
	params, err := FormatParams(input)
	require.NoError(t, err)
	require.Equal(t, "1055", params.Get(entity.FieldAmount))
}

func TestFormatParamsExpirySwap(t *testing.T) {
	input := validInput()
	input.ExpiryDate = "2512"
	params, err := FormatParams(input)
	require.NoError(t, err)
	require.Equal(t, "1225", params.Get(entity.FieldExpiryDate))
}

func TestFormatParamsLanguage(t *testing.T) {
	input := validInput()
	input.Lang = "en"
	params, err := FormatParams(input)
	require.NoError(t, err)
	require.Equal(t, "002", params.Get(entity.FieldConsumerLanguage))

	// unknown language is omitted, not an error
	input = validInput()
	input.Lang = "xx"
	params, err = FormatParams(input)
	require.NoError(t, err)
	require.False(t, params.Has(entity.FieldConsumerLanguage))
}

func TestFormatParamsOptionalPassthrough(t *testing.T) {
	input := validInput()
	input.Identifier = "REQUIRED"
	input.DirectPayment = "true"
	input.SuccessURL = "https://shop.example/ok"
	input.ErrorURL = "https://shop.example/ko"
	input.ClientIP = "203.0.113.7"

	params, err := FormatParams(input)
	require.NoError(t, err)
	require.Equal(t, "REQUIRED", params.Get(entity.FieldIdentifier))
	require.Equal(t, "true", params.Get(entity.FieldDirectPayment))
	require.Equal(t, "https://shop.example/ok", params.Get(entity.FieldURLOK))
	require.Equal(t, "https://shop.example/ko", params.Get(entity.FieldURLKO))
	require.Equal(t, "203.0.113.7", params.Get(entity.FieldClientIP))

	// absent optionals stay absent
	require.False(t, params.Has(entity.FieldMerchantName))
	require.False(t, params.Has(entity.FieldPan))
}

func TestFormatParamsInsertionOrder(t *testing.T) {
	params, err := FormatParams(validInput())
	require.NoError(t, err)

	require.Equal(t, []string{
		entity.FieldAmount,
		entity.FieldOrder,
		entity.FieldMerchantCode,
		entity.FieldCurrency,
		entity.FieldTransactionType,
		entity.FieldTerminal,
	}, params.Keys())
}
