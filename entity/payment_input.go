package entity

// PaymentInput is the request-shaping object a caller fills in to start a
// payment. Amount is expressed in major currency units (e.g. euros); the
// formatter converts it to the integer minor-unit string the gateway expects.
// Currency and Terminal fall back to documented defaults when empty.
type PaymentInput struct {
	Amount            float64 `json:"amount"`
	Order             string  `json:"order"`
	MerchantCode      string  `json:"merchant_code"`
	TransactionType   string  `json:"transaction_type"`
	Currency          string  `json:"currency,omitempty"`
	Terminal          string  `json:"terminal,omitempty"`
	MerchantName      string  `json:"merchant_name,omitempty"`
	MerchantURL       string  `json:"merchant_url,omitempty"`
	MerchantSignature string  `json:"merchant_signature,omitempty"`
	SuccessURL        string  `json:"success_url,omitempty"`
	ErrorURL          string  `json:"error_url,omitempty"`
	DateFrequency     string  `json:"date_frequency,omitempty"`
	ChargeExpiryDate  string  `json:"charge_expiry_date,omitempty"`
	SumTotal          string  `json:"sum_total,omitempty"`
	DirectPayment     string  `json:"direct_payment,omitempty"`
	Identifier        string  `json:"identifier,omitempty"`
	Group             string  `json:"group,omitempty"`
	Pan               string  `json:"pan,omitempty"`
	// ExpiryDate in YYMM order as issued by card vaults; the formatter swaps
	// it to the MMYY order the protocol expects.
	ExpiryDate   string `json:"expiry_date,omitempty"`
	CVV2         string `json:"cvv2,omitempty"`
	CardCountry  string `json:"card_country,omitempty"`
	Lang         string `json:"lang,omitempty"`
	MerchantData string `json:"merchant_data,omitempty"`
	ClientIP     string `json:"client_ip,omitempty"`
}
