package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/form"
)

var contactHeaders = []string{"ID", "From", "Email", "Subject", "Message", "Read", "Received"}

func contactRow(c domain.ContactResponse) []string {
	return []string{
		c.ID,
		c.Name,
		c.Email,
		orDash(c.Subject),
		truncate(c.Message, 40),
		formatBool(c.IsRead, "read", "new"),
		formatDate(c.CreatedAt),
	}
}

func contactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contact",
		Aliases: []string{"messages"},
		Short:   "Read and manage contact form messages",
	}
	cmd.AddCommand(contactListCmd(a), contactReadCmd(a), contactDeleteCmd(a), contactSendCmd(a))
	return cmd
}

func contactListCmd(a *app) *cobra.Command {
	var unread bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List received messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			slice := a.store().Contacts()
			if err := slice.Fetch(commandContext(cmd)); err != nil {
				return fmt.Errorf("list messages: %w", err)
			}
			items := domain.SortByCreatedDesc(slice.State().Items)
			if unread {
				kept := items[:0]
				for _, c := range items {
					if !c.IsRead {
						kept = append(kept, c)
					}
				}
				items = kept
			}
			if a.jsonOutput() {
				return renderJSON(a.out, items)
			}
			rows := make([][]string, 0, len(items))
			for _, c := range items {
				rows = append(rows, contactRow(c))
			}
			if err := renderTable(a.out, contactHeaders, rows); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.out, "%d unread\n", domain.Unread(slice.State().Items))
			return err
		},
	}
	cmd.Flags().BoolVar(&unread, "unread", false, "only show unread messages")
	return cmd
}

func contactReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Toggle the read flag of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			c, err := a.store().Contacts().ToggleRead(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("mark message %s: %w", args[0], err)
			}
			if a.jsonOutput() {
				return renderJSON(a.out, c)
			}
			return renderTable(a.out, contactHeaders, [][]string{contactRow(c)})
		},
	}
}

func contactDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a message",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.store().Contacts().Delete(commandContext(cmd), args[0]); err != nil {
				return fmt.Errorf("delete message %s: %w", args[0], err)
			}
			_, err := fmt.Fprintf(a.out, "Deleted message %s.\n", args[0])
			return err
		},
	}
}

// contactSendCmd posts through the public contact form, as a visitor would.
func contactSendCmd(a *app) *cobra.Command {
	var (
		file string
		d    form.ContactDraft
	)
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message through the public contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if err := form.LoadDraft(file, &d); err != nil {
					return err
				}
			}
			body, err := d.Body()
			if err != nil {
				return err
			}
			c, err := a.store().Contacts().Submit(commandContext(cmd), body)
			if err != nil {
				return fmt.Errorf("send message: %w", err)
			}
			if a.jsonOutput() {
				return renderJSON(a.out, c)
			}
			_, err = fmt.Fprintln(a.out, "Message sent.")
			return err
		},
	}
	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "TOML file with name, email, subject and message")
	f.StringVar(&d.Name, "name", "", "your name")
	f.StringVar(&d.Email, "email", "", "your email")
	f.StringVar(&d.Subject, "subject", "", "subject")
	f.StringVar(&d.Message, "message", "", "message text")
	return cmd
}
