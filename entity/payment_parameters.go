package entity

// PaymentParameters are the decoded fields of a gateway notification or
// response. JSON tags follow the gateway vocabulary, bson tags the storage
// layout.
type PaymentParameters struct {
	Date               string `json:"Ds_Date,omitempty" bson:"date,omitempty"`
	Hour               string `json:"Ds_Hour,omitempty" bson:"hour,omitempty"`
	Amount             string `json:"Ds_Amount" bson:"amount"`
	Currency           string `json:"Ds_Currency" bson:"currency"`
	Order              string `json:"Ds_Order" bson:"order"`
	MerchantCode       string `json:"Ds_MerchantCode" bson:"merchant_code"`
	Terminal           string `json:"Ds_Terminal" bson:"terminal"`
	Response           string `json:"Ds_Response" bson:"response"`
	ResponseMessage    string `json:"-" bson:"response_message,omitempty"`
	TransactionType    string `json:"Ds_TransactionType" bson:"transaction_type"`
	SecurePayment      string `json:"Ds_SecurePayment,omitempty" bson:"secure_payment,omitempty"`
	CardNumber         string `json:"Ds_CardNumber,omitempty" bson:"card_number,omitempty"`
	CardCountry        string `json:"Ds_Card_Country,omitempty" bson:"card_country,omitempty"`
	CardBrand          string `json:"Ds_Card_Brand,omitempty" bson:"card_brand,omitempty"`
	AuthorisationCode  string `json:"Ds_AuthorisationCode,omitempty" bson:"authorisation_code,omitempty"`
	ConsumerLanguage   string `json:"Ds_ConsumerLanguage,omitempty" bson:"consumer_language,omitempty"`
	MerchantData       string `json:"Ds_MerchantData,omitempty" bson:"merchant_data,omitempty"`
	MerchantIdentifier string `json:"Ds_Merchant_Identifier,omitempty" bson:"merchant_identifier,omitempty"`
	ExpiryDate         string `json:"Ds_ExpiryDate,omitempty" bson:"expiry_date,omitempty"`
	SOAPVersion        string `json:"-" bson:"soap_version,omitempty"`
}

func (p *PaymentParameters) DataType() string {
	return "notification"
}

// ErrorCodeResponse is the body the gateway returns instead of parameters
// when a request is rejected outright.
type ErrorCodeResponse struct {
	Code string `json:"errorCode"`
}
