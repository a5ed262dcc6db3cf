// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
	IsRead  bool   `json:"isRead"`
}

// Contact form validation errors.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailInvalid    = errors.New("a valid email is required")
	ErrMessageRequired = errors.New("message is required")
)

// ContactSubmission is the payload accepted from the public contact form.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate trims the submission and checks the required fields.
func (s *ContactSubmission) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)

	if s.Name == "" {
		return ErrNameRequired
	}
	if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != s.Email {
		return ErrEmailInvalid
	}
	if s.Message == "" {
		return ErrMessageRequired
	}
	return nil
}

// ToMessage builds an unread message stamped with the given time.
func (s ContactSubmission) ToMessage(id string, at time.Time) ContactMessage {
	return ContactMessage{
		ID:      id,
		Name:    s.Name,
		Email:   s.Email,
		Message: s.Message,
		Date:    at.UTC().Format(time.RFC3339),
	}
}
