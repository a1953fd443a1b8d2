package repositories

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"uniportal/domain"
	"uniportal/domain/search"
)

// InspectRow is a printable view of one stored key, used by the inspect tool.
type InspectRow struct {
	Key    string
	Kind   string
	Seq    string
	At     string
	Detail string
}

// Describe decodes a raw key/value pair according to its prefix.
// Unknown or corrupted values are reported, never returned as errors.
func Describe(k string, value []byte) InspectRow {
	row := InspectRow{Key: k, Kind: "UNKNOWN", Detail: fmt.Sprintf("%d bytes", len(value))}
	switch {
	case strings.HasPrefix(k, prefixDraft):
		row.Kind = "DRAFT"
		describeRecord(&row, value, func(d domain.DraftMessage) (time.Time, string) {
			return d.LastModified, fmt.Sprintf("to %s: %s (%d chars)", d.Recipient.Name, d.Subject, d.CharacterCount)
		})
	case strings.HasPrefix(k, prefixSent):
		row.Kind = "SENT"
		describeRecord(&row, value, func(s domain.SentMessage) (time.Time, string) {
			return s.SentAt, fmt.Sprintf("to %s: %s", s.Recipient.Name, s.Subject)
		})
	case strings.HasPrefix(k, prefixInbox):
		row.Kind = "INBOX"
		describeRecord(&row, value, func(r domain.ReceivedMessage) (time.Time, string) {
			return r.ReceivedAt, fmt.Sprintf("from %s: %s (read=%t)", r.Sender.Name, r.Subject, r.Read)
		})
	case strings.HasPrefix(k, prefixSearchName):
		row.Kind = "INDEX"
		row.Detail = "-> " + string(value)
	case strings.HasPrefix(k, prefixSearch):
		row.Kind = "SEARCH"
		describeRecord(&row, value, func(s search.SavedSearch) (time.Time, string) {
			return s.LastUsed, fmt.Sprintf("%s: %q (%d results)", s.Name, s.Query, s.ResultCount)
		})
	case strings.HasPrefix(k, prefixSeq):
		row.Kind = "COUNTER"
		if len(value) == 8 {
			row.Detail = strconv.FormatUint(binary.BigEndian.Uint64(value), 10)
		}
	}
	return row
}

func describeRecord[T any](row *InspectRow, value []byte, summary func(T) (time.Time, string)) {
	var env envelope[T]
	if err := json.Unmarshal(value, &env); err != nil {
		row.Detail = "Error: unmarshal failed"
		return
	}
	at, detail := summary(env.Record)
	row.Seq = strconv.FormatUint(env.Seq, 10)
	row.At = at.Format(time.DateTime)
	row.Detail = detail
}
