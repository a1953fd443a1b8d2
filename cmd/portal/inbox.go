package main

import (
	"fmt"
	"os"
	"time"

	"uniportal/domain"
	"uniportal/infrastructure/mail"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newInboxCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Manage received messages",
	}
	cmd.AddCommand(newInboxReceiveCmd(a), newInboxImportCmd(a), newInboxReadCmd(a), newInboxListCmd(a))
	return cmd
}

func newInboxReceiveCmd(a *app) *cobra.Command {
	var (
		payload    domain.ReceivedPayload
		kind       string
		category   string
		priority   string
		receivedAt string
	)
	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Record an inbound message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload.Sender.Kind = domain.RecipientKind(kind)
			payload.Category = domain.Category(category)
			payload.Priority = domain.Priority(priority)
			if receivedAt != "" {
				at, err := time.Parse(time.RFC3339, receivedAt)
				if err != nil {
					return fmt.Errorf("invalid --at, use RFC3339: %w", err)
				}
				payload.ReceivedAt = at
			}
			received, err := a.store.Receive(cmd.Context(), payload)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Message %s received from %s", received.ID, received.Sender.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&payload.Sender.Name, "from", "", "sender name")
	cmd.Flags().StringVar(&payload.Sender.Address, "address", "", "sender e-mail address")
	cmd.Flags().StringVar(&kind, "kind", string(domain.KindLecturer), "sender kind (lecturer|student)")
	cmd.Flags().StringVar(&payload.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&payload.Body, "body", "", "message body")
	cmd.Flags().StringVar(&payload.Course, "course", "", "course code")
	cmd.Flags().StringVar(&category, "category", "", "academic|administrative|general")
	cmd.Flags().StringVar(&priority, "priority", "", "low|medium|high")
	cmd.Flags().StringVar(&payload.ThreadID, "thread", "", "conversation thread id")
	cmd.Flags().StringVar(&receivedAt, "at", "", "reception time (RFC3339), now when empty")
	return cmd
}

func newInboxImportCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "import <file.eml>...",
		Short: "Record inbound messages from RFC 5322 files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				received, err := importEML(cmd, a, path, domain.RecipientKind(kind))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				success(cmd.OutOrStdout(), "Message %s received from %s", received.ID, received.Sender.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(domain.KindLecturer), "sender kind (lecturer|student)")
	return cmd
}

func importEML(cmd *cobra.Command, a *app, path string, kind domain.RecipientKind) (domain.ReceivedMessage, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.ReceivedMessage{}, err
	}
	defer file.Close()
	payload, err := mail.ParseEML(file, kind)
	if err != nil {
		return domain.ReceivedMessage{}, err
	}
	return a.store.Receive(cmd.Context(), payload)
}

func newInboxReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a message as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			message, err := a.store.MarkRead(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "From: %s\nSubject: %s\n\n%s\n", message.Sender.Name, message.Subject, message.Body)
			return nil
		},
	}
}

func newInboxListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List received messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			received, err := a.store.ListReceived(cmd.Context())
			if err != nil {
				return err
			}
			printInbox(cmd.OutOrStdout(), received)
			return nil
		},
	}
}
