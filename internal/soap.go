package internal

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// SOAPVersion identifies which SOAP protocol an inbound notification used.
// The reply must be rendered in the same version.
type SOAPVersion string

const (
	SOAP11 SOAPVersion = "1.1"
	SOAP12 SOAPVersion = "1.2"
)

const (
	soap11Namespace = "schemas.xmlsoap.org/soap/envelope"
	soap12Namespace = "www.w3.org/2003/05/soap-envelope"
	soap12MediaType = "soap+xml"
)

// Response envelope templates for procesaNotificacionSISResponse. The answer
// is spliced into the <return> element after escaping.
const (
	soap11ResponseTemplate = `<?xml version="1.0" encoding="UTF-8"?><SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/" xmlns:SOAP-ENC="http://schemas.xmlsoap.org/soap/encoding/" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><SOAP-ENV:Body><ns1:procesaNotificacionSISResponse xmlns:ns1="InotificacionSIS" SOAP-ENV:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/"><return xsi:type="xsd:string">%s</return></ns1:procesaNotificacionSISResponse></SOAP-ENV:Body></SOAP-ENV:Envelope>`
	soap12ResponseTemplate = `<?xml version="1.0" encoding="UTF-8"?><soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><soap:Body><ns1:procesaNotificacionSISResponse xmlns:ns1="InotificacionSIS"><return>%s</return></ns1:procesaNotificacionSISResponse></soap:Body></soap:Envelope>`
)

// DetectSOAPVersion classifies an inbound request by its content type header
// when present, falling back to the envelope namespace found in the body.
func DetectSOAPVersion(contentType, body string) (SOAPVersion, error) {
	if contentType != "" {
		if strings.Contains(contentType, soap12MediaType) {
			return SOAP12, nil
		}
		return SOAP11, nil
	}
	if body != "" {
		if strings.Contains(body, soap12Namespace) {
			return SOAP12, nil
		}
		if strings.Contains(body, soap11Namespace) {
			return SOAP11, nil
		}
	}
	return "", fmt.Errorf("not a valid SOAP request")
}

// payloadPattern locates the single XML element carrying the notification
// payload. The payload is plain escaped text by contract, never nested XML or
// CDATA, so the narrow match is deliberate: a full parser would accept input
// shapes the gateway never sends.
var payloadPattern = regexp.MustCompile(`(?s)<(?:\w+:)?XML(?:\s[^>]*)?>(.*?)</(?:\w+:)?XML>`)

// ExtractNotificationPayload pulls the escaped answer text out of a
// notification envelope and unescapes it.
func ExtractNotificationPayload(xml string) (string, error) {
	match := payloadPattern.FindStringSubmatch(xml)
	if match == nil {
		return "", fmt.Errorf("invalid notification")
	}
	return UnescapeXML(match[1]), nil
}

// BuildNotificationResponse renders the acknowledgement envelope for a
// notification in the protocol version the request used.
func BuildNotificationResponse(answer string, version SOAPVersion) string {
	template := soap11ResponseTemplate
	if version == SOAP12 {
		template = soap12ResponseTemplate
	}
	return fmt.Sprintf(template, EscapeXML(answer))
}

// ContentType returns the media type used to reply in this protocol version.
func (v SOAPVersion) ContentType() string {
	if v == SOAP12 {
		return "application/soap+xml; charset=utf-8"
	}
	return "text/xml; charset=utf-8"
}

// notificationSignatureOrder is part of the wire contract; the gateway signs
// these fields in exactly this order.
var notificationSignatureOrder = []string{
	"Ds_Amount",
	"Ds_Order",
	"Ds_MerchantCode",
	"Ds_Currency",
	"Ds_Response",
	"Ds_CardNumber",
	"Ds_TransactionType",
	"Ds_SecurePayment",
}

// NotificationSignature computes the legacy signature over the signed
// notification fields concatenated in wire order, followed by the merchant
// secret. Returned as lowercase hex.
func NotificationSignature(values url.Values, secret string) string {
	var builder strings.Builder
	for _, field := range notificationSignatureOrder {
		builder.WriteString(values.Get(field))
	}
	builder.WriteString(secret)
	sum := sha1.Sum([]byte(builder.String()))
	return hex.EncodeToString(sum[:])
}
