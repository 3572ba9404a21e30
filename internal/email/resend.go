// email реализует отправку писем через Resend (https://resend.com).
package email

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jossainson/ticketing-backend/internal/config"
	"github.com/jossainson/ticketing-backend/internal/pkg/log"
)

const defaultBaseURL = "https://api.resend.com"

// ResendClient отправляет письма через HTTP API Resend.
// Реализует service.Mailer.
type ResendClient struct {
	client *resty.Client
	from   string
}

// sendRequest — тело POST /emails.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// apiError — тело ошибки Resend.
type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// NewResend создаёт клиент Resend из конфигурации.
func NewResend(cfg config.EmailConfig) *ResendClient {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(10 * time.Second)

	return &ResendClient{
		client: client,
		from:   cfg.From,
	}
}

// SetBaseURL переопределяет адрес API (для тестов).
func (c *ResendClient) SetBaseURL(url string) {
	c.client.SetBaseURL(url)
}

// SendPasswordReset отправляет письмо со ссылкой на сброс пароля.
// Получатель приветствуется по имени; при пустом имени — нейтральное «Bonjour,».
func (c *ResendClient) SendPasswordReset(ctx context.Context, to, name, link string) error {
	const op = "email.resend.SendPasswordReset"

	lg := log.From(ctx)

	greeting := "Bonjour,"
	if name != "" {
		greeting = fmt.Sprintf("Bonjour %s,", html.EscapeString(name))
	}

	body := sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: "Réinitialisation de mot de passe",
		HTML: fmt.Sprintf(
			`<p>%s</p><p>Pour réinitialiser votre mot de passe, cliquez sur le lien ci-dessous :</p><p><a href="%s">Réinitialiser mon mot de passe</a></p><p>Ce lien expirera dans une heure. Si vous n'êtes pas à l'origine de cette demande, ignorez ce message.</p>`,
			greeting, link,
		),
	}

	var apiErr apiError
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetError(&apiErr).
		Post("/emails")

	if err != nil {
		lg.Error("resend_request_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if resp.IsError() {
		lg.Error("resend_api_error",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode()),
			slog.String("name", apiErr.Name),
		)
		return fmt.Errorf("%s: resend responded %d: %s", op, resp.StatusCode(), apiErr.Message)
	}

	return nil
}
