// Package mail turns RFC 5322 messages into received portal messages.
package mail

import (
	"fmt"
	"io"
	"strings"

	"uniportal/domain"
	"uniportal/errors"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// Portal gateways tag relayed messages with these headers.
const (
	headerCourse   = "X-Portal-Course"
	headerCategory = "X-Portal-Category"
	headerPriority = "X-Priority"
)

// ParseEML reads a raw message. The sender gets the given kind since an
// e-mail address does not tell a lecturer from a student. Only attachment
// descriptors are kept.
func ParseEML(r io.Reader, senderKind domain.RecipientKind) (domain.ReceivedPayload, error) {
	reader, err := mail.CreateReader(r)
	if err != nil {
		return domain.ReceivedPayload{}, fmt.Errorf("%w: reading message: %w", errors.ErrValidation, err)
	}
	defer reader.Close()

	var payload domain.ReceivedPayload
	payload.Subject, _ = reader.Header.Subject()

	fromList, err := reader.Header.AddressList("From")
	if err != nil || len(fromList) == 0 {
		return domain.ReceivedPayload{}, fmt.Errorf("%w: message has no sender", errors.ErrValidation)
	}
	from := fromList[0]
	payload.Sender = domain.Contact{
		Name:    strings.TrimSpace(from.Name),
		Address: strings.ToLower(strings.TrimSpace(from.Address)),
		Kind:    senderKind,
	}
	if payload.Sender.Name == "" {
		payload.Sender.Name = payload.Sender.Address
	}

	if date, err := reader.Header.Date(); err == nil && !date.IsZero() {
		payload.ReceivedAt = date.UTC()
	}
	if ids, err := reader.Header.MsgIDList("In-Reply-To"); err == nil && len(ids) > 0 {
		payload.ThreadID = ids[0]
	} else if ids, err := reader.Header.MsgIDList("References"); err == nil && len(ids) > 0 {
		payload.ThreadID = ids[0]
	}
	payload.Course = strings.TrimSpace(reader.Header.Get(headerCourse))
	payload.Category = domain.Category(strings.ToLower(strings.TrimSpace(reader.Header.Get(headerCategory))))
	payload.Priority = parsePriority(reader.Header.Get(headerPriority))

	var bodies []string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.ReceivedPayload{}, fmt.Errorf("%w: reading part: %w", errors.ErrValidation, err)
		}

		switch header := part.Header.(type) {
		case *mail.InlineHeader:
			mediaType, _, _ := header.ContentType()
			if mediaType != "" && !strings.HasPrefix(mediaType, "text/plain") {
				continue
			}
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return domain.ReceivedPayload{}, fmt.Errorf("%w: reading body: %w", errors.ErrValidation, err)
			}
			bodies = append(bodies, strings.TrimRight(string(body), "\r\n"))
		case *mail.AttachmentHeader:
			filename, _ := header.Filename()
			if strings.TrimSpace(filename) == "" {
				filename = "attachment"
			}
			contentType, _, _ := header.ContentType()
			size, err := io.Copy(io.Discard, part.Body)
			if err != nil {
				return domain.ReceivedPayload{}, fmt.Errorf("%w: reading attachment: %w", errors.ErrValidation, err)
			}
			payload.Attachments = append(payload.Attachments, domain.Attachment{
				Name:      filename,
				Size:      size,
				MediaKind: contentType,
			})
		}
	}
	payload.Body = strings.Join(bodies, "\n")
	return payload, nil
}

// parsePriority maps the X-Priority scale, 1 being the most urgent.
func parsePriority(value string) domain.Priority {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	switch value[0] {
	case '1', '2':
		return domain.PriorityHigh
	case '4', '5':
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}
