package internal

import (
	"fmt"
	"math"
	"sispay/entity"
	"strconv"
)

// Defaults applied when the caller leaves a field empty, kept together so the
// default policy is auditable in one place.
var formatDefaults = struct {
	Currency string
	Terminal string
}{
	Currency: "EUR",
	Terminal: "1",
}

// maxAmountLength is the protocol hard limit for the minor-unit amount string.
const maxAmountLength = 12

// FormatParams validates the payment input and maps it to the flat
// DS_MERCHANT_* field mapping the gateway expects. It either returns the
// complete mapping or fails without producing output.
func FormatParams(input *entity.PaymentInput) (*entity.MerchantParams, error) {
	if input == nil {
		return nil, fmt.Errorf("empty payment input")
	}
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, fmt.Errorf("amount is not a finite number")
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}
	if input.MerchantCode == "" {
		return nil, fmt.Errorf("merchant code is required")
	}
	if input.TransactionType == "" {
		return nil, fmt.Errorf("transaction type is required")
	}
	if input.Order == "" {
		return nil, fmt.Errorf("order is required")
	}

	currencyCode := input.Currency
	if currencyCode == "" {
		currencyCode = formatDefaults.Currency
	}
	currency, ok := LookupCurrency(currencyCode)
	if !ok {
		return nil, fmt.Errorf("unsupported currency %s", currencyCode)
	}

	amount := strconv.FormatFloat(math.Floor(input.Amount*float64(currency.Multiplier)), 'f', -1, 64)
	if len(amount) > maxAmountLength {
		return nil, fmt.Errorf("amount %s exceeds %d positions", amount, maxAmountLength)
	}

	terminal := input.Terminal
	if terminal == "" {
		terminal = formatDefaults.Terminal
	}

	params := entity.NewMerchantParams()
	params.Set(entity.FieldAmount, amount)
	params.Set(entity.FieldOrder, input.Order)
	params.Set(entity.FieldMerchantCode, input.MerchantCode)
	params.Set(entity.FieldCurrency, currency.Code)
	params.Set(entity.FieldTransactionType, input.TransactionType)
	params.Set(entity.FieldTerminal, terminal)

	setIfPresent(params, entity.FieldMerchantName, input.MerchantName)
	setIfPresent(params, entity.FieldMerchantURL, input.MerchantURL)
	setIfPresent(params, entity.FieldMerchantSignature, input.MerchantSignature)
	setIfPresent(params, entity.FieldURLOK, input.SuccessURL)
	setIfPresent(params, entity.FieldURLKO, input.ErrorURL)
	setIfPresent(params, entity.FieldDateFrecuency, input.DateFrequency)
	setIfPresent(params, entity.FieldChargeExpiryDate, input.ChargeExpiryDate)
	setIfPresent(params, entity.FieldSumTotal, input.SumTotal)
	setIfPresent(params, entity.FieldDirectPayment, input.DirectPayment)
	setIfPresent(params, entity.FieldIdentifier, input.Identifier)
	setIfPresent(params, entity.FieldGroup, input.Group)
	setIfPresent(params, entity.FieldPan, input.Pan)

	if input.ExpiryDate != "" {
		expiry, err := swapExpiryDate(input.ExpiryDate)
		if err != nil {
			return nil, err
		}
		params.Set(entity.FieldExpiryDate, expiry)
	}

	setIfPresent(params, entity.FieldCVV2, input.CVV2)
	setIfPresent(params, entity.FieldCardCountry, input.CardCountry)

	// unknown language codes are silently omitted, not an error
	if input.Lang != "" {
		if language, found := LookupLanguage(input.Lang); found {
			params.Set(entity.FieldConsumerLanguage, language)
		}
	}

	setIfPresent(params, entity.FieldMerchantData, input.MerchantData)
	setIfPresent(params, entity.FieldClientIP, input.ClientIP)

	return params, nil
}

func setIfPresent(params *entity.MerchantParams, field, value string) {
	if value == "" {
		return
	}
	params.Set(field, value)
}

// swapExpiryDate converts the caller's YYMM value to the MMYY order the
// protocol expects.
func swapExpiryDate(value string) (string, error) {
	if len(value) != 4 {
		return "", fmt.Errorf("invalid expiry date %s", value)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid expiry date %s", value)
		}
	}
	return value[2:4] + value[0:2], nil
}
