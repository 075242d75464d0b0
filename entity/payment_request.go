package entity

// PaymentRequest is the signed triple attached to every outgoing gateway
// request and received back in notifications.
type PaymentRequest struct {
	Parameters       string `json:"Ds_MerchantParameters"`
	Signature        string `json:"Ds_Signature"`
	SignatureVersion string `json:"Ds_SignatureVersion"`
}
