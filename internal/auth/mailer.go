// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package auth

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Mailer delivers magic-link emails. When no SMTP host is configured the
// link is logged instead, which is how local development works.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewMailer creates a Mailer. host may be empty to enable log-only delivery.
func NewMailer(host, port, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

// SendLoginLink delivers the magic link to the given address. Without an
// SMTP host the link is written to the log at Info level so a developer
// can follow it by hand.
func (m *Mailer) SendLoginLink(email, link string) error {
	if m.host == "" {
		slog.Info("magic link issued (smtp not configured)", "email", email, "link", link)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + email,
		"Subject: Your Astrodaily sign-in link",
		"",
		"Follow this link to sign in. It expires in 15 minutes.",
		"",
		link,
		"",
	}, "\r\n")

	addr := m.host + ":" + m.port
	var a smtp.Auth
	if m.user != "" {
		a = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := smtp.SendMail(addr, a, m.from, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("send login mail: %w", err)
	}

	slog.Info("magic link sent", "email", email)
	return nil
}
