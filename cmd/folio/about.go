package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/form"
)

var errNoProfile = errors.New("no profile yet: create one with folio about create")

func aboutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Manage the profile shown in the about section",
	}
	cmd.AddCommand(
		aboutShowCmd(a),
		aboutDraftCmd(a),
		aboutCreateCmd(a),
		aboutUpdateCmd(a),
		aboutUploadCmd(a, "resume", "Upload a resume file", uploadResume),
		aboutUploadCmd(a, "image", "Upload a profile image", uploadImage),
		aboutToggleCmd(a),
		aboutDeleteCmd(a),
	)
	return cmd
}

// currentAbout fetches the profile and fails when the server has none.
func currentAbout(cmd *cobra.Command, a *app) (domain.About, error) {
	slice := a.store().About()
	if err := slice.Fetch(commandContext(cmd)); err != nil {
		return domain.About{}, fmt.Errorf("load profile: %w", err)
	}
	about := slice.State().Entity
	if about == nil {
		return domain.About{}, errNoProfile
	}
	return *about, nil
}

func printAbout(a *app, about domain.About) error {
	if a.jsonOutput() {
		return renderJSON(a.out, about)
	}
	fields := [][2]string{
		{"ID", about.ID},
		{"Role", about.Role},
		{"Quote", orDash(truncate(about.Quote, 60))},
		{"Description", orDash(truncate(strings.Join(about.Description, " "), 60))},
		{"Email", orDash(about.Email)},
		{"Phone", orDash(about.Phone)},
		{"Address", orDash(about.Address)},
		{"Resume", orDash(about.Resume)},
		{"Image", orDash(about.ProfileImage)},
		{"Active", formatBool(about.IsActive, "yes", "no")},
	}
	names := make([]string, 0, len(about.SocialLinks))
	for name := range about.SocialLinks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields = append(fields, [2]string{name, about.SocialLinks[name]})
	}
	return renderFields(a.out, fields)
}

func aboutShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			about, err := currentAbout(cmd, a)
			if err != nil {
				return err
			}
			return printAbout(a, about)
		},
	}
}

func aboutDraftCmd(a *app) *cobra.Command {
	var file string
	var blank bool
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Write the profile as a TOML draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &form.AboutDraft{Description: form.NewListField()}
			if !blank {
				about, err := currentAbout(cmd, a)
				if err != nil && !errors.Is(err, errNoProfile) {
					return err
				}
				if err == nil {
					d = form.DraftFromAbout(about)
				}
			}
			if err := form.SaveDraft(file, d); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.out, "Wrote %s.\n", file)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "about.toml", "where to write the draft")
	cmd.Flags().BoolVar(&blank, "blank", false, "write an empty draft instead of the current profile")
	return cmd
}

func aboutCreateCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the profile from a TOML draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			body, err := loadForm(file, &form.AboutDraft{})
			if err != nil {
				return err
			}
			about, err := a.store().About().Create(commandContext(cmd), body)
			if err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
			return printAbout(a, about)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "draft file (see about draft)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func aboutUpdateCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the profile from a TOML draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			current, err := currentAbout(cmd, a)
			if err != nil {
				return err
			}
			body, err := loadForm(file, &form.AboutDraft{})
			if err != nil {
				return err
			}
			about, err := a.store().About().Update(commandContext(cmd), current.ID, body)
			if err != nil {
				return fmt.Errorf("update profile: %w", err)
			}
			return printAbout(a, about)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "draft file (see about draft)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

type uploadFunc func(cmd *cobra.Command, a *app, path string) (domain.About, error)

func uploadResume(cmd *cobra.Command, a *app, path string) (domain.About, error) {
	f, err := form.ResumeForm(path)
	if err != nil {
		return domain.About{}, err
	}
	return a.store().About().UploadResume(commandContext(cmd), f)
}

func uploadImage(cmd *cobra.Command, a *app, path string) (domain.About, error) {
	f, err := form.ProfileImageForm(path)
	if err != nil {
		return domain.About{}, err
	}
	return a.store().About().UploadProfileImage(commandContext(cmd), f)
}

func aboutUploadCmd(a *app, use, short string, upload uploadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <path>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			about, err := upload(cmd, a, args[0])
			if err != nil {
				return fmt.Errorf("upload %s: %w", use, err)
			}
			return printAbout(a, about)
		},
	}
}

func aboutToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Show or hide the profile on the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			current, err := currentAbout(cmd, a)
			if err != nil {
				return err
			}
			about, err := a.store().About().ToggleActive(commandContext(cmd), current.ID)
			if err != nil {
				return fmt.Errorf("toggle profile: %w", err)
			}
			return printAbout(a, about)
		},
	}
}

func aboutDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			current, err := currentAbout(cmd, a)
			if err != nil {
				return err
			}
			if err := a.store().About().Delete(commandContext(cmd), current.ID); err != nil {
				return fmt.Errorf("delete profile: %w", err)
			}
			_, err = fmt.Fprintln(a.out, "Deleted profile.")
			return err
		},
	}
}
