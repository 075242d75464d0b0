package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerchantParamsInsertionOrder(t *testing.T) {
	params := NewMerchantParams()
	params.Set(FieldAmount, "1050")
	params.Set(FieldOrder, "1200")
	params.Set(FieldCurrency, "978")

	require.Equal(t, []string{FieldAmount, FieldOrder, FieldCurrency}, params.Keys())
	require.Equal(t, 3, params.Len())
}

func TestMerchantParamsOverwriteKeepsPosition(t *testing.T) {
	params := NewMerchantParams()
	params.Set(FieldAmount, "1000")
	params.Set(FieldOrder, "1200")
	params.Set(FieldAmount, "1050")

	require.Equal(t, []string{FieldAmount, FieldOrder}, params.Keys())
	require.Equal(t, "1050", params.Get(FieldAmount))
}

func TestMerchantParamsHas(t *testing.T) {
	params := NewMerchantParams()
	params.Set(FieldMerchantData, "")

	require.True(t, params.Has(FieldMerchantData))
	require.False(t, params.Has(FieldAmount))
	require.Equal(t, "", params.Get(FieldAmount))
}

func TestMerchantParamsMarshalJSONOrdered(t *testing.T) {
	params := NewMerchantParams()
	params.Set(FieldAmount, "1050")
	params.Set(FieldOrder, "1200")
	params.Set(FieldMerchantData, `a "quoted" value`)

	data, err := json.Marshal(params)
	require.NoError(t, err)
	require.Equal(t,
		`{"DS_MERCHANT_AMOUNT":"1050","DS_MERCHANT_ORDER":"1200","DS_MERCHANT_MERCHANTDATA":"a \"quoted\" value"}`,
		string(data))
}
