// internal/workers/communication/notify-letter/handler_test.go
package notifyletter

import (
	"context"
	"testing"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/letter/catalog"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	sent []*ses.SendEmailInput
	err  error
}

func (m *mockSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, params)
	return &ses.SendEmailOutput{}, nil
}

type mockSNS struct {
	published []*sns.PublishInput
	err       error
}

func (m *mockSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.published = append(m.published, params)
	return &sns.PublishOutput{}, nil
}

func createTestConfig() *Config {
	cfg := LoadConfig()
	cfg.EmailEnabled = true
	cfg.SMSEnabled = true
	cfg.FromEmail = "letters@example.org"
	return cfg
}

func createInput() *Input {
	return &Input{
		LetterID:   "letter-1",
		TemplateID: "bank_atm_lost",
		Language:   "en",
		LetterText: "Respected Sir/Madam, my account 12345678901 ...",
		Email:      "ramesh@example.org",
		Phone:      "+919876543210",
	}
}

func TestHandler_Execute_SendsEmailAndSMS(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	h := NewHandlerWithClients(createTestConfig(), catalog.Default(), sesMock, snsMock, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)

	assert.Equal(t, StatusSent, output.Status)
	assert.NotEmpty(t, output.NotificationID)
	require.Len(t, sesMock.sent, 1)
	require.Len(t, snsMock.published, 1)

	// Subject names the template.
	assert.Contains(t, *sesMock.sent[0].Message.Subject.Data, "ATM Card Lost")
	// Email carries the full letter, SMS only a reference.
	assert.Contains(t, *sesMock.sent[0].Message.Body.Text.Data, "12345678901")
	assert.NotContains(t, *snsMock.published[0].Message, "12345678901")
	assert.Contains(t, *snsMock.published[0].Message, "letter-1")
}

func TestHandler_Execute_HindiSubject(t *testing.T) {
	sesMock := &mockSES{}
	h := NewHandlerWithClients(createTestConfig(), catalog.Default(), sesMock, &mockSNS{}, logger.NewTestLogger(t))

	input := createInput()
	input.Language = "hi"
	input.Phone = ""

	_, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, sesMock.sent, 1)
	assert.Contains(t, *sesMock.sent[0].Message.Subject.Data, "आपका पत्र तैयार है")
}

func TestHandler_Execute_EmailFailure(t *testing.T) {
	sesMock := &mockSES{err: assert.AnError}
	h := NewHandlerWithClients(createTestConfig(), catalog.Default(), sesMock, &mockSNS{}, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, output.Status)
}

func TestHandler_Execute_AllChannelsDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.EmailEnabled = false
	cfg.SMSEnabled = false
	h := NewHandlerWithClients(cfg, catalog.Default(), &mockSES{}, &mockSNS{}, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
}

func TestHandler_Execute_EmptyLetter(t *testing.T) {
	h := NewHandlerWithClients(createTestConfig(), catalog.Default(), &mockSES{}, &mockSNS{}, logger.NewTestLogger(t))

	input := createInput()
	input.LetterText = ""

	_, err := h.Execute(context.Background(), input)
	assert.Error(t, err)
}
