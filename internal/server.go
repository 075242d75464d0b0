package internal

import (
	"encoding/json"
	"fmt"
	"github.com/julienschmidt/httprouter"
	"io"
	"net"
	"net/http"
	"sispay/config"
	"sispay/entity"
	"sispay/services"
)

const (
	createPayment      = "/payment"
	paymentNotify      = "/notify"
	soapNotify         = "/notify/soap"
	notificationStatus = "/notify/:order"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	database   services.Database
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(createPayment, s.createPayment)
	router.POST(paymentNotify, s.paymentNotify)
	router.POST(soapNotify, s.soapNotify)
	router.GET(notificationStatus, s.notificationStatus)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetDatabase(database services.Database) {
	s.database = database
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

// createPayment builds a signed request from the caller's payment input. The
// caller forwards the result to the gateway itself.
func (s *Server) createPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := withTrace(r.Context())
	reqID := traceFrom(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create payment: read request body", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var input entity.PaymentInput
	if err = json.Unmarshal(body, &input); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] create payment: decode request body; %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request, err := s.payments.CreatePayment(ctx, &input)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create payment: order %s", reqID, input.Order), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(request); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create payment: encode response", reqID), err)
	}
}

func (s *Server) paymentNotify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := withTrace(r.Context())
	reqID := traceFrom(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment notify: get body", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = s.payments.Notify(ctx, body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment notify: process body", reqID), err)
	}
	w.WriteHeader(http.StatusOK)
}

// soapNotify answers the SOAP notification callback with an envelope in the
// same protocol version the gateway used.
func (s *Server) soapNotify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := withTrace(r.Context())
	reqID := traceFrom(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] soap notify: get body", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response, mediaType, err := s.payments.NotifySOAP(ctx, r.Header.Get("Content-Type"), body)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] soap notify: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", mediaType)
	if _, err = w.Write([]byte(response)); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] soap notify: write response", reqID), err)
	}
}

// notificationStatus returns the stored record of a processed notification.
// Only available when a database is attached.
func (s *Server) notificationStatus(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	ctx := withTrace(r.Context())
	reqID := traceFrom(ctx)

	if s.database == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	order := p.ByName("order")
	result, err := s.database.GetNotification(ctx, order)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] notification status: order %s; %v", reqID, order, err))
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(result); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] notification status: encode response", reqID), err)
	}
}
