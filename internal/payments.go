package internal

import (
	"context"
	"crypto/hmac"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"sispay/config"
	"sispay/entity"
	"sispay/services"
	"strings"

	"gitee.com/golang-module/dongle"
)

const signatureVersion = "HMAC_SHA256_V1"

// webSafeReplacer normalizes the URL-safe Base64 alphabet the gateway uses in
// notifications back to the standard alphabet.
var webSafeReplacer = strings.NewReplacer("-", "+", "_", "/")

// Payments prepares signed gateway requests and processes inbound
// notifications. All methods are stateless; the service can be called
// concurrently without coordination.
type Payments struct {
	conf     *config.Config
	database services.Database
	logger   services.LogHandler
}

func NewPayments(conf *config.Config) *Payments {
	return &Payments{conf: conf}
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
}

// CreatePayment formats the caller input into the gateway field mapping,
// serializes it and signs it. The transport of the result is up to the
// caller.
func (p *Payments) CreatePayment(_ context.Context, input *entity.PaymentInput) (*entity.PaymentRequest, error) {
	if input.MerchantCode == "" {
		input.MerchantCode = p.conf.Merchant.Code
	}
	if input.Terminal == "" {
		input.Terminal = p.conf.Merchant.Terminal
	}

	params, err := FormatParams(input)
	if err != nil {
		return nil, fmt.Errorf("format params: %v", err)
	}

	parametersBase64, err := p.createParameters(params)
	if err != nil {
		return nil, fmt.Errorf("encode parameters: %v", err)
	}

	encryptor := NewEncryptor(p.conf.Merchant.Secret, parametersBase64, params.Get(entity.FieldOrder))
	signature, err := encryptor.CreateSignature()
	if err != nil {
		return nil, fmt.Errorf("create signature: %v", err)
	}

	return &entity.PaymentRequest{
		Parameters:       parametersBase64,
		Signature:        signature,
		SignatureVersion: signatureVersion,
	}, nil
}

// createParameters converts the ordered field mapping to JSON and encodes it
// with Base64 for transport.
func (p *Payments) createParameters(params *entity.MerchantParams) (string, error) {
	parametersJson, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	p.logger.Debug(fmt.Sprintf("request parameters: %s", string(parametersJson)))
	return dongle.Encode.FromBytes(parametersJson).ByBase64().ToString(), nil
}

// Notify processes the REST form notification webhook: the gateway posts
// Ds_MerchantParameters, Ds_Signature and Ds_SignatureVersion as form fields.
func (p *Payments) Notify(ctx context.Context, data []byte) error {
	params, err := url.ParseQuery(string(data))
	if err != nil {
		p.logger.Info(string(data))
		return fmt.Errorf("parse query: %v", err)
	}

	notification := entity.PaymentRequest{
		SignatureVersion: params.Get("Ds_SignatureVersion"),
		Parameters:       params.Get("Ds_MerchantParameters"),
		Signature:        params.Get("Ds_Signature"),
	}

	result, err := p.readParameters(notification.Parameters)
	if err != nil {
		return err
	}
	if err = p.verifySignature(&notification, result.Order); err != nil {
		return fmt.Errorf("verify signature: %v", err)
	}

	p.saveNotification(ctx, result)
	return nil
}

// NotifySOAP processes a SOAP notification and returns the acknowledgement
// envelope together with its media type. The envelope version matches the
// version of the inbound request.
func (p *Payments) NotifySOAP(ctx context.Context, contentType string, body []byte) (string, string, error) {
	version, err := DetectSOAPVersion(contentType, string(body))
	if err != nil {
		return "", "", err
	}
	payload, err := ExtractNotificationPayload(string(body))
	if err != nil {
		return "", "", err
	}
	values, err := url.ParseQuery(payload)
	if err != nil {
		return "", "", fmt.Errorf("parse payload: %v", err)
	}

	answer := "OK"
	if signature := values.Get("Ds_Signature"); signature != "" {
		expected := NotificationSignature(values, p.conf.Merchant.Secret)
		received := strings.ToLower(strings.TrimSpace(signature))
		if subtle.ConstantTimeCompare([]byte(received), []byte(expected)) != 1 {
			p.logger.Warn(fmt.Sprintf("soap notification: signature mismatch for order %s", values.Get("Ds_Order")))
			answer = "KO"
		}
	}

	result := &entity.PaymentParameters{
		Date:              values.Get("Ds_Date"),
		Hour:              values.Get("Ds_Hour"),
		Amount:            values.Get("Ds_Amount"),
		Currency:          values.Get("Ds_Currency"),
		Order:             values.Get("Ds_Order"),
		MerchantCode:      values.Get("Ds_MerchantCode"),
		Terminal:          values.Get("Ds_Terminal"),
		Response:          values.Get("Ds_Response"),
		TransactionType:   values.Get("Ds_TransactionType"),
		SecurePayment:     values.Get("Ds_SecurePayment"),
		CardNumber:        values.Get("Ds_CardNumber"),
		CardCountry:       values.Get("Ds_Card_Country"),
		AuthorisationCode: values.Get("Ds_AuthorisationCode"),
		SOAPVersion:       string(version),
	}
	p.saveNotification(ctx, result)

	return BuildNotificationResponse(answer, version), version.ContentType(), nil
}

// verifySignature recomputes the HMAC over the received parameters with the
// key derived from the notification's own order number and compares it in
// constant time with the received signature.
func (p *Payments) verifySignature(notification *entity.PaymentRequest, order string) error {
	if notification.SignatureVersion != signatureVersion {
		return fmt.Errorf("unknown signature version: %s", notification.SignatureVersion)
	}

	encryptor := NewEncryptor(p.conf.Merchant.Secret, notification.Parameters, order)
	expected, err := encryptor.CreateSignature()
	if err != nil {
		return err
	}
	expectedBytes, err := base64.StdEncoding.DecodeString(expected)
	if err != nil {
		return fmt.Errorf("decode expected signature: %v", err)
	}
	receivedBytes, err := base64.StdEncoding.DecodeString(webSafeReplacer.Replace(notification.Signature))
	if err != nil {
		return fmt.Errorf("decode signature: %v", err)
	}

	if !hmac.Equal(expectedBytes, receivedBytes) {
		return fmt.Errorf("signature mismatch for order %s", order)
	}
	return nil
}

func (p *Payments) readParameters(parameters string) (*entity.PaymentParameters, error) {
	if parameters == "" {
		return nil, fmt.Errorf("empty parameters")
	}
	parametersBytes, err := base64.StdEncoding.DecodeString(webSafeReplacer.Replace(parameters))
	if err != nil {
		return nil, fmt.Errorf("decode parameters: %v", err)
	}
	var result entity.PaymentParameters
	if err = json.Unmarshal(parametersBytes, &result); err != nil {
		p.logger.Warn(fmt.Sprintf("parameters: %s", string(parametersBytes)))
		return nil, fmt.Errorf("parse parameters: %v", err)
	}

	// a rejected request carries an errorCode body instead of parameters
	if result.Order == "" {
		var gatewayError entity.ErrorCodeResponse
		if err = json.Unmarshal(parametersBytes, &gatewayError); err == nil && gatewayError.Code != "" {
			if message, ok := SISErrorMessage(gatewayError.Code); ok {
				return nil, fmt.Errorf("gateway error %s: %s", gatewayError.Code, message)
			}
			return nil, fmt.Errorf("gateway error %s", gatewayError.Code)
		}
	}

	p.logger.Debug(fmt.Sprintf("received parameters: %s", string(parametersBytes)))
	return &result, nil
}

// saveNotification decodes the response code into a message and persists the
// notification when a database is attached.
func (p *Payments) saveNotification(ctx context.Context, result *entity.PaymentParameters) {
	if message, ok := ResponseCodeMessage(result.Response); ok {
		result.ResponseMessage = message
	}
	p.logger.Info(fmt.Sprintf("notification: order %s; type %s; response %s; %s",
		result.Order, result.TransactionType, result.Response, result.ResponseMessage))

	if p.database == nil {
		return
	}
	if err := p.database.SaveNotification(ctx, result); err != nil {
		p.logger.Error("save notification", err)
	}
}
