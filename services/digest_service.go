package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"salon-insights/metrics"
	"salon-insights/models"
)

// Messenger delivers one text message.
type Messenger interface {
	Send(to, body string) error
}

// TwilioMessenger sends SMS through the Twilio REST API.
type TwilioMessenger struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioMessenger(accountSID, authToken, from string) *TwilioMessenger {
	return &TwilioMessenger{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (m *TwilioMessenger) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(m.from)
	params.SetBody(body)

	resp, err := m.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return fmt.Errorf("message to %s accepted without a SID", to)
	}
	return nil
}

// LogMessenger writes the message to the log instead of sending it. Used when
// no Twilio credentials are configured.
type LogMessenger struct {
	Logger *zap.Logger
}

func (m LogMessenger) Send(to, body string) error {
	m.Logger.Info("digest", zap.String("to", to), zap.String("body", body))
	return nil
}

// DigestService sends the end-of-day numbers to the owner's phones.
type DigestService struct {
	source     DataSource
	engine     *metrics.Engine
	messenger  Messenger
	recipients []string
	logger     *zap.Logger
	cron       *cron.Cron
}

func NewDigestService(source DataSource, engine *metrics.Engine, messenger Messenger, recipients []string, logger *zap.Logger) *DigestService {
	return &DigestService{
		source:     source,
		engine:     engine,
		messenger:  messenger,
		recipients: recipients,
		logger:     logger,
	}
}

// StartScheduler runs the digest on a standard five-field cron schedule,
// evaluated in the engine's time zone.
func (s *DigestService) StartScheduler(schedule string) error {
	c := cron.New(cron.WithLocation(s.engine.Location()))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		s.SendDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("digest scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running digest to finish.
func (s *DigestService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// SendDigest builds today's summary and sends it to every recipient. Failures
// for one recipient do not stop the others.
func (s *DigestService) SendDigest(ctx context.Context) {
	body, err := s.BuildDigest(ctx)
	if err != nil {
		s.logger.Error("digest not built", zap.Error(err))
		return
	}

	sent := 0
	for _, to := range s.recipients {
		if err := s.messenger.Send(to, body); err != nil {
			s.logger.Error("digest not delivered", zap.String("to", to), zap.Error(err))
			continue
		}
		sent++
	}
	s.logger.Info("digest sent", zap.Int("delivered", sent), zap.Int("recipients", len(s.recipients)))
}

// BuildDigest renders today's KPIs as a short text message.
func (s *DigestService) BuildDigest(ctx context.Context) (string, error) {
	clients, err := s.engine.Normalize(s.source.Fetch(ctx, models.ClientData))
	if err != nil {
		return "", err
	}
	products, err := s.engine.Normalize(s.source.Fetch(ctx, models.ProductSale))
	if err != nil {
		return "", err
	}

	home, err := s.engine.HomeOverview(clients)
	if err != nil {
		return "", err
	}
	prod, err := s.engine.ProductOverview(products)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Salon summary %s\n", s.engine.Now().Format("02 Jan 2006"))
	if clients.Empty() && products.Empty() {
		b.WriteString("No data available today.")
		return b.String(), nil
	}
	fmt.Fprintf(&b, "Sales today: Rs %s\n", home.TotalSalesToday.StringFixed(2))
	fmt.Fprintf(&b, "Customers: %d (new %d, repeat %d)\n", home.CustomersToday, home.NewClients, home.RepeatedClients)
	fmt.Fprintf(&b, "Week: Rs %s, %d visits\n", home.WeeklySales.StringFixed(2), home.WeeklyServiceCount)
	fmt.Fprintf(&b, "Month: Rs %s, %d visits\n", home.MonthlySales.StringFixed(2), home.MonthlyServiceCount)
	fmt.Fprintf(&b, "Products sold today: %d", prod.ProductsSoldToday)
	return b.String(), nil
}
