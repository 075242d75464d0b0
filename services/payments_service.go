package services

import (
	"context"
	"sispay/entity"
)

type Payments interface {
	CreatePayment(ctx context.Context, input *entity.PaymentInput) (*entity.PaymentRequest, error)
	Notify(ctx context.Context, data []byte) error
	NotifySOAP(ctx context.Context, contentType string, body []byte) (response string, mediaType string, err error)
}
