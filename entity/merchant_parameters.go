// Package entity defines data models for the sispay gateway service.
package entity

import (
	"bytes"
	"encoding/json"
)

// Protocol field names of the request parameters. The vocabulary is fixed and
// case-sensitive; the gateway rejects anything else.
const (
	FieldOrder             = "DS_MERCHANT_ORDER"
	FieldMerchantCode      = "DS_MERCHANT_MERCHANTCODE"
	FieldTransactionType   = "DS_MERCHANT_TRANSACTIONTYPE"
	FieldTerminal          = "DS_MERCHANT_TERMINAL"
	FieldCurrency          = "DS_MERCHANT_CURRENCY"
	FieldAmount            = "DS_MERCHANT_AMOUNT"
	FieldMerchantName      = "DS_MERCHANT_MERCHANTNAME"
	FieldMerchantURL       = "DS_MERCHANT_MERCHANTURL"
	FieldMerchantSignature = "DS_MERCHANT_MERCHANTSIGNATURE"
	FieldURLOK             = "DS_MERCHANT_URLOK"
	FieldURLKO             = "DS_MERCHANT_URLKO"
	FieldDateFrecuency     = "DS_MERCHANT_DATEFRECUENCY"
	FieldChargeExpiryDate  = "DS_MERCHANT_CHARGEEXPIRYDATE"
	FieldSumTotal          = "DS_MERCHANT_SUMTOTAL"
	FieldDirectPayment     = "DS_MERCHANT_DIRECTPAYMENT"
	FieldIdentifier        = "DS_MERCHANT_IDENTIFIER"
	FieldGroup             = "DS_MERCHANT_GROUP"
	FieldPan               = "DS_MERCHANT_PAN"
	FieldExpiryDate        = "DS_MERCHANT_EXPIRYDATE"
	FieldCVV2              = "DS_MERCHANT_CVV2"
	FieldCardCountry       = "DS_CARD_COUNTRY"
	FieldConsumerLanguage  = "DS_MERCHANT_CONSUMERLANGUAGE"
	FieldMerchantData      = "DS_MERCHANT_MERCHANTDATA"
	FieldClientIP          = "DS_MERCHANT_CLIENTIP"
)

// MerchantParams is the flat field mapping sent to the gateway. Insertion
// order is preserved because downstream serializations of the request can be
// order-sensitive. The mapping is built once by the formatter and read-only
// afterwards.
type MerchantParams struct {
	keys   []string
	values map[string]string
}

func NewMerchantParams() *MerchantParams {
	return &MerchantParams{values: make(map[string]string)}
}

// Set stores a field value. Setting an existing field again overwrites the
// value but keeps its original position.
func (p *MerchantParams) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value of a field, empty string if absent.
func (p *MerchantParams) Get(key string) string {
	return p.values[key]
}

// Has reports whether a field was set, distinguishing absent from empty.
func (p *MerchantParams) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the field names in insertion order.
func (p *MerchantParams) Keys() []string {
	return append([]string(nil), p.keys...)
}

func (p *MerchantParams) Len() int {
	return len(p.keys)
}

// MarshalJSON writes the mapping as a JSON object with fields in insertion
// order.
func (p *MerchantParams) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
