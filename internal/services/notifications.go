package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/models"
)

const TextbeltURL = "https://textbelt.com/text"

// Notifier is told about events patients should hear about.
type Notifier interface {
	ReservationReceived(r models.Reservation)
}

// NotificationService sends SMS acknowledgements through Textbelt. Sends
// run in the background and never fail the request that caused them.
type NotificationService struct {
	key      string
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

func NewNotificationService(key string, log *zap.Logger) *NotificationService {
	return &NotificationService{
		key:      key,
		endpoint: TextbeltURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log.Named("notifications"),
	}
}

// WithEndpoint points the service at another Textbelt-compatible URL.
func (s *NotificationService) WithEndpoint(endpoint string) *NotificationService {
	s.endpoint = endpoint
	return s
}

func (s *NotificationService) ReservationReceived(r models.Reservation) {
	if s.key == "" {
		s.log.Debug("SMS not sent: TEXTBELT_API_KEY is not set", zap.String("reservation_id", r.ID))
		return
	}
	if r.Phone == "" {
		s.log.Info("SMS not sent: reservation has no phone number", zap.String("reservation_id", r.ID))
		return
	}

	body := fmt.Sprintf("درخواست نوبت شما برای %s در تاریخ %s ثبت شد و در انتظار تایید است.", r.DoctorName, r.PreferredDate)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.SendSMS(ctx, r.Phone, body); err != nil {
			s.log.Warn("Failed to send SMS", zap.String("reservation_id", r.ID), zap.Error(err))
			return
		}
		s.log.Info("SMS sent", zap.String("reservation_id", r.ID))
	}()
}

type textbeltResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SendSMS posts one message to Textbelt and reports its verdict.
func (s *NotificationService) SendSMS(ctx context.Context, phone, message string) error {
	payload, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.key,
	})
	if err != nil {
		return fmt.Errorf("encode textbelt request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build textbelt request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("textbelt request failed: %w", err)
	}
	defer resp.Body.Close()

	var result textbeltResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode textbelt response (status %d): %w", resp.StatusCode, err)
	}
	if !result.Success {
		return fmt.Errorf("textbelt rejected message: %s", result.Error)
	}
	return nil
}
