package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Source tells which collection a corpus entry comes from.
type Source string

const (
	SourceDraft        Source = "draft"
	SourceSent         Source = "sent"
	SourceReceived     Source = "received"
	SourceConversation Source = "conversation"
)

// Message is the read-only projection scanned by the matcher.
// It is rebuilt from the store on every search and never written back.
type Message struct {
	ID          uuid.UUID
	Source      Source
	Subject     string
	Content     string
	SenderName  string
	Course      string
	Category    Category
	Priority    Priority
	At          time.Time
	Attachments []string
	Read        bool
}

func (m Message) HasAttachments() bool {
	return len(m.Attachments) > 0
}

// FromSent projects a sent message. The local user is the sender and a sent
// message always counts as read.
func FromSent(s SentMessage) Message {
	return Message{
		ID:          s.ID,
		Source:      SourceSent,
		Subject:     s.Subject,
		Content:     s.Body,
		SenderName:  s.SenderName,
		Course:      s.Course,
		Category:    s.Category,
		Priority:    s.Priority,
		At:          s.SentAt,
		Attachments: attachmentNames(s.Attachments),
		Read:        true,
	}
}

// FromReceived projects an inbound message. Messages that belong to a thread
// are reported as conversation entries.
func FromReceived(r ReceivedMessage) Message {
	return Message{
		ID:          r.ID,
		Source:      lo.Ternary(r.ThreadID != "", SourceConversation, SourceReceived),
		Subject:     r.Subject,
		Content:     r.Body,
		SenderName:  r.Sender.Name,
		Course:      r.Course,
		Category:    r.Category,
		Priority:    r.Priority,
		At:          r.ReceivedAt,
		Attachments: attachmentNames(r.Attachments),
		Read:        r.Read,
	}
}

func FromDraft(d DraftMessage) Message {
	return Message{
		ID:          d.ID,
		Source:      SourceDraft,
		Subject:     d.Subject,
		Content:     d.Body,
		SenderName:  d.SenderName,
		Course:      d.Course,
		Category:    d.Category,
		Priority:    d.Priority,
		At:          d.LastModified,
		Attachments: attachmentNames(d.Attachments),
		Read:        true,
	}
}

func attachmentNames(attachments []Attachment) []string {
	return lo.Map(attachments, func(a Attachment, _ int) string { return a.Name })
}
