// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

/*
Package mailer provides the transactional email side-channel.

It is consumed fire-and-forget: callers spawn the send in a goroutine and a
delivery failure is logged, never propagated into the request that triggered
it (a lost notification must not fail a stored job application).
*/
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/config"
)

// Sender is the minimal contract domain packages depend on.
type Sender interface {
	Send(ctx context.Context, to, subject, textBody string) error
}

// SMTPMailer implements [Sender] over authenticated SMTP.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// New builds an SMTP mailer from configuration.
//
// Call [config.Config.MailerConfigured] first; New fails on an empty host.
func New(cfg *config.Config, logger *slog.Logger) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
	)
	if err != nil {
		return nil, fmt.Errorf("mailer: failed to create client: %w", err)
	}

	logger.Info("smtp mailer configured",
		slog.String("host", cfg.SMTPHost),
		slog.Int("port", cfg.SMTPPort),
	)

	return &SMTPMailer{client: client, from: cfg.MailFrom}, nil
}

// Send delivers a plain-text message.
func (mailer *SMTPMailer) Send(ctx context.Context, to, subject, textBody string) error {
	message := mail.NewMsg()
	if err := message.From(mailer.from); err != nil {
		return fmt.Errorf("mailer: invalid from address: %w", err)
	}
	if err := message.To(to); err != nil {
		return fmt.Errorf("mailer: invalid to address: %w", err)
	}
	message.Subject(subject)
	message.SetBodyString(mail.TypeTextPlain, textBody)

	if err := mailer.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("mailer: send failed: %w", err)
	}
	return nil
}
