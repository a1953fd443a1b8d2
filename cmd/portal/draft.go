package main

import (
	"fmt"
	"os"
	"path/filepath"

	"uniportal/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type draftFlags struct {
	to       string
	kind     string
	address  string
	subject  string
	body     string
	course   string
	category string
	priority string
	role     string
	tags     []string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.to, "to", "", "recipient name")
	cmd.Flags().StringVar(&f.kind, "kind", string(domain.KindLecturer), "recipient kind (lecturer|student)")
	cmd.Flags().StringVar(&f.address, "address", "", "recipient e-mail address")
	cmd.Flags().StringVar(&f.subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&f.body, "body", "", "message body")
	cmd.Flags().StringVar(&f.course, "course", "", "course code")
	cmd.Flags().StringVar(&f.category, "category", "", "academic|administrative|general")
	cmd.Flags().StringVar(&f.priority, "priority", "", "low|medium|high")
	cmd.Flags().StringVar(&f.role, "role", "", "sender role (student|lecturer)")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "tag, repeatable")
}

func (f *draftFlags) recipient() *domain.Contact {
	if f.to == "" {
		return nil
	}
	return &domain.Contact{Name: f.to, Address: f.address, Kind: domain.RecipientKind(f.kind)}
}

func (f *draftFlags) payload() domain.DraftPayload {
	return domain.DraftPayload{
		Subject:    f.subject,
		Body:       f.body,
		Recipient:  f.recipient(),
		Course:     f.course,
		Category:   domain.Category(f.category),
		Priority:   domain.Priority(f.priority),
		Tags:       f.tags,
		SenderRole: domain.Role(f.role),
	}
}

// patch keeps only the flags given on the command line.
func (f *draftFlags) patch(cmd *cobra.Command) domain.DraftPatch {
	changed := cmd.Flags().Changed
	var patch domain.DraftPatch
	if changed("subject") {
		patch.Subject = lo.ToPtr(f.subject)
	}
	if changed("body") {
		patch.Body = lo.ToPtr(f.body)
	}
	if changed("to") {
		patch.Recipient = f.recipient()
	}
	if changed("course") {
		patch.Course = lo.ToPtr(f.course)
	}
	if changed("category") {
		patch.Category = lo.ToPtr(domain.Category(f.category))
	}
	if changed("priority") {
		patch.Priority = lo.ToPtr(domain.Priority(f.priority))
	}
	if changed("role") {
		patch.SenderRole = lo.ToPtr(domain.Role(f.role))
	}
	if changed("tag") {
		patch.Tags = lo.ToPtr(f.tags)
	}
	return patch
}

func parseIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func newDraftCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage drafts",
	}
	cmd.AddCommand(
		newDraftCreateCmd(a),
		newDraftUpdateCmd(a),
		newDraftShowCmd(a),
		newDraftListCmd(a),
		newDraftSendCmd(a),
		newDraftDeleteCmd(a),
		newDraftAttachCmd(a),
		newDraftExportCmd(a),
		newDraftImportCmd(a),
	)
	return cmd
}

func newDraftCreateCmd(a *app) *cobra.Command {
	var flags draftFlags
	var send bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Save a new draft, or send it right away with --send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sid := a.controller.Compose()
			defer a.controller.Discard(sid)

			if send {
				sent, err := a.controller.SaveAndSend(cmd.Context(), sid, flags.payload())
				if err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "Sent %s to %s", sent.ID, sent.Recipient.Name)
				return nil
			}
			draft, err := a.controller.Save(cmd.Context(), sid, flags.payload())
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Draft %s saved", draft.ID)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&send, "send", false, "send immediately after saving")
	return cmd
}

func newDraftUpdateCmd(a *app) *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			draft, err := a.controller.Edit(cmd.Context(), id, flags.patch(cmd), false)
			if err != nil {
				return err
			}
			printDraft(cmd.OutOrStdout(), draft)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDraftShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			draft, err := a.store.GetDraft(cmd.Context(), id)
			if err != nil {
				return err
			}
			printDraft(cmd.OutOrStdout(), draft)
			return nil
		},
	}
}

func newDraftListCmd(a *app) *cobra.Command {
	var sent bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drafts, or sent messages with --sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sent {
				messages, err := a.store.ListSent(cmd.Context())
				if err != nil {
					return err
				}
				printSent(cmd.OutOrStdout(), messages)
				return nil
			}
			drafts, err := a.store.ListDrafts(cmd.Context())
			if err != nil {
				return err
			}
			printDrafts(cmd.OutOrStdout(), drafts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sent, "sent", false, "list sent messages")
	return cmd
}

func newDraftSendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <id>",
		Short: "Send a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			sent, err := a.controller.Send(cmd.Context(), id)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Sent %s to %s", sent.ID, sent.Recipient.Name)
			return nil
		},
	}
}

func newDraftDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete drafts; unknown ids are ignored",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			deleted, err := a.controller.DeleteMany(cmd.Context(), ids)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "%d draft(s) deleted", deleted)
			return nil
		},
	}
}

func newDraftAttachCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attach <id> <file>...",
		Short: "Attach files to a draft",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			draft, err := a.store.GetDraft(cmd.Context(), id)
			if err != nil {
				return err
			}
			attachments := draft.Attachments
			for _, path := range args[1:] {
				attachment, err := describeFile(path)
				if err != nil {
					return err
				}
				attachments = append(attachments, attachment)
			}
			updated, err := a.controller.Edit(cmd.Context(), id, domain.DraftPatch{Attachments: &attachments}, false)
			if err != nil {
				return err
			}
			printDraft(cmd.OutOrStdout(), updated)
			return nil
		},
	}
}

// describeFile builds the attachment descriptor of a local file. Only the
// descriptor is stored, never the content.
func describeFile(path string) (domain.Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Attachment{}, err
	}
	if info.IsDir() {
		return domain.Attachment{}, fmt.Errorf("%s is a directory", path)
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("detecting type of %s: %w", path, err)
	}
	return domain.Attachment{
		Name:      filepath.Base(path),
		Size:      info.Size(),
		MediaKind: mtype.String(),
	}, nil
}

func newDraftExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every draft as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			count, err := a.store.ExportDrafts(cmd.Context(), w)
			if err != nil {
				return err
			}
			if out != "" {
				success(cmd.OutOrStdout(), "%d draft(s) exported to %s", count, out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")
	return cmd
}

func newDraftImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load drafts from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()
			count, err := a.store.ImportDrafts(cmd.Context(), file)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "%d draft(s) imported", count)
			return nil
		},
	}
}
