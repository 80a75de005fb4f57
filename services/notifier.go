package services

import (
	"fmt"
	"os"

	"glamour-salon-backend/config"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Notifier sends booking-confirmation SMS through Twilio. Disabled unless
// SMS_NOTIFICATIONS=true; failures are logged and never surfaced to the
// payment flow.
type Notifier struct {
	client *twilio.RestClient
	from   string
	enable bool
}

func NewNotifier() *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &Notifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from:   os.Getenv("TWILIO_FROM_NUMBER"),
		enable: os.Getenv("SMS_NOTIFICATIONS") == "true",
	}
}

func (n *Notifier) SendBookingConfirmation(phone, serviceName, date, timeOfDay string) {
	if !n.enable || phone == "" {
		return
	}

	body := fmt.Sprintf("Your appointment for %s on %s at %s is confirmed. See you soon!", serviceName, date, timeOfDay)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(n.from)
	params.SetBody(body)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		config.Log.Warn("confirmation SMS failed", zap.String("to", phone), zap.Error(err))
		return
	}
	config.Log.Info("confirmation SMS sent", zap.String("to", phone))
}
