package services

import (
	"context"
	"sispay/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SaveNotification(ctx context.Context, params *entity.PaymentParameters) error
	GetNotification(ctx context.Context, order string) (*entity.PaymentParameters, error)
}

type Data interface {
	DataType() string
}

type LogHandler interface {
	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string, err error)
}
