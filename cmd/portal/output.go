package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"uniportal/domain"
	"uniportal/domain/search"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.New(color.FgGreen).Render("✓ "+fmt.Sprintf(format, args...)))
}

func printDrafts(w io.Writer, drafts []domain.DraftMessage) {
	table := newTable(w, "ID", "Subject", "To", "Course", "Priority", "Chars", "Read time", "Modified", "Auto")
	for _, d := range drafts {
		table.Append([]string{
			d.ID.String(),
			d.Subject,
			d.Recipient.Name,
			d.Course,
			string(d.Priority),
			fmt.Sprint(d.CharacterCount),
			fmt.Sprintf("%d min", d.EstimatedReadTime),
			d.LastModified.Local().Format(timeLayout),
			fmt.Sprint(d.AutoSaved),
		})
	}
	table.Render()
}

func printDraft(w io.Writer, d domain.DraftMessage) {
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgCyan).Render("Draft"), d.ID)
	fmt.Fprintf(w, "To:       %s (%s)\n", d.Recipient.Name, d.Recipient.Kind)
	fmt.Fprintf(w, "Subject:  %s\n", d.Subject)
	fmt.Fprintf(w, "Course:   %s\n", d.Course)
	fmt.Fprintf(w, "Category: %s  Priority: %s\n", d.Category, d.Priority)
	if len(d.Attachments) > 0 {
		names := make([]string, 0, len(d.Attachments))
		for _, a := range d.Attachments {
			names = append(names, fmt.Sprintf("%s (%s, %d B)", a.Name, a.MediaKind, a.Size))
		}
		fmt.Fprintf(w, "Attached: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(w, "Length:   %d chars, about %d min\n", d.CharacterCount, d.EstimatedReadTime)
}

func printSent(w io.Writer, sent []domain.SentMessage) {
	table := newTable(w, "ID", "Subject", "To", "Course", "Sent")
	for _, s := range sent {
		table.Append([]string{s.ID.String(), s.Subject, s.Recipient.Name, s.Course, s.SentAt.Local().Format(timeLayout)})
	}
	table.Render()
}

func printInbox(w io.Writer, received []domain.ReceivedMessage) {
	table := newTable(w, "ID", "From", "Subject", "Course", "Priority", "Received", "Read")
	for _, r := range received {
		subject := r.Subject
		if !r.Read {
			subject = color.New(color.OpBold).Render(subject)
		}
		table.Append([]string{
			r.ID.String(),
			r.Sender.Name,
			subject,
			r.Course,
			string(r.Priority),
			r.ReceivedAt.Local().Format(timeLayout),
			fmt.Sprint(r.Read),
		})
	}
	table.Render()
}

func printResults(w io.Writer, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, color.New(color.FgYellow).Render("No messages found"))
		return
	}
	table := newTable(w, "ID", "Source", "Match", "From", "Date", "Snippet")
	for _, r := range results {
		table.Append([]string{
			r.MessageID.String(),
			string(r.Source),
			string(r.MatchType),
			r.SenderName,
			r.Date.Local().Format(timeLayout),
			r.Snippet,
		})
	}
	table.Render()
}

func printSavedSearches(w io.Writer, saved []search.SavedSearch) {
	table := newTable(w, "ID", "Name", "Query", "Results", "Last used")
	for _, s := range saved {
		table.Append([]string{s.ID.String(), s.Name, s.Query, fmt.Sprint(s.ResultCount), formatTime(s.LastUsed)})
	}
	table.Render()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
