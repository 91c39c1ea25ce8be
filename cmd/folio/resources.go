package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/form"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/store"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

type record interface {
	domain.Keyed
	Created() time.Time
}

// draft is an editable record: loaded from TOML and submitted as a form.
type draft interface {
	Form() (*transport.Form, error)
}

// resource describes one list section of the portfolio for the generic
// list/create/update/delete/draft commands.
type resource[T record, D draft] struct {
	name     string
	singular string
	slice    func(*store.Store) *store.ListSlice[T]

	headers []string
	row     func(T) []string

	newDraft  func() D
	draftFrom func(T) D

	// filter, when set, adds --category to list. noMatch explains an empty
	// filtered list given every item.
	filter  func(items []T, category string) []T
	noMatch func(all []T, category string) string
}

func resourceCmd[T record, D draft](a *app, r resource[T, D]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.name,
		Short: fmt.Sprintf("Manage %s", r.name),
	}
	cmd.AddCommand(
		listCmd(a, r),
		createCmd(a, r),
		updateCmd(a, r),
		deleteCmd(a, r),
		draftCmd(a, r),
	)
	return cmd
}

func listCmd[T record, D draft](a *app, r resource[T, D]) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s, newest first", r.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slice := r.slice(a.store())
			if err := slice.Fetch(commandContext(cmd)); err != nil {
				return fmt.Errorf("list %s: %w", r.name, err)
			}
			all := slice.State().Items
			items := all
			if r.filter != nil {
				items = r.filter(all, category)
			}
			items = domain.SortByCreatedDesc(items)
			if a.jsonOutput() {
				return renderJSON(a.out, items)
			}
			if len(items) == 0 && len(all) > 0 && r.noMatch != nil {
				_, err := fmt.Fprintln(a.out, dimStyle.Render(r.noMatch(all, category)))
				return err
			}
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, r.row(it))
			}
			return renderTable(a.out, r.headers, rows)
		},
	}
	if r.filter != nil {
		cmd.Flags().StringVar(&category, "category", "", "only show this category (\"all\" for every one)")
	}
	return cmd
}

func createCmd[T record, D draft](a *app, r resource[T, D]) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s from a TOML draft", r.singular),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			body, err := loadForm(file, r.newDraft())
			if err != nil {
				return err
			}
			created, err := r.slice(a.store()).Create(commandContext(cmd), body)
			if err != nil {
				return fmt.Errorf("create %s: %w", r.singular, err)
			}
			return printRecord(a, r, created)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "draft file (see the draft command)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func updateCmd[T record, D draft](a *app, r resource[T, D]) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: fmt.Sprintf("Replace a %s with a TOML draft", r.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			body, err := loadForm(file, r.newDraft())
			if err != nil {
				return err
			}
			updated, err := r.slice(a.store()).Update(commandContext(cmd), args[0], body)
			if err != nil {
				return fmt.Errorf("update %s %s: %w", r.singular, args[0], err)
			}
			return printRecord(a, r, updated)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "draft file (see the draft command)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func deleteCmd[T record, D draft](a *app, r resource[T, D]) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Delete a %s", r.singular),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := r.slice(a.store()).Delete(commandContext(cmd), args[0]); err != nil {
				return fmt.Errorf("delete %s %s: %w", r.singular, args[0], err)
			}
			_, err := fmt.Fprintf(a.out, "Deleted %s %s.\n", r.singular, args[0])
			return err
		},
	}
}

// draftCmd writes an editable TOML draft: blank, or prefilled from an
// existing record when an id is given.
func draftCmd[T record, D draft](a *app, r resource[T, D]) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "draft [id]",
		Short: fmt.Sprintf("Write a TOML draft of a %s for create or update", r.singular),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := r.newDraft()
			if len(args) == 1 {
				slice := r.slice(a.store())
				if err := slice.Fetch(commandContext(cmd)); err != nil {
					return fmt.Errorf("load %s: %w", r.name, err)
				}
				found := false
				for _, it := range slice.State().Items {
					if it.Key() == args[0] {
						d, found = r.draftFrom(it), true
						break
					}
				}
				if !found {
					return fmt.Errorf("%s %s: not found", r.singular, args[0])
				}
			}
			if err := form.SaveDraft(file, d); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.out, "Wrote %s.\n", file)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", r.singular+".toml", "where to write the draft")
	return cmd
}

func loadForm[D draft](path string, d D) (*transport.Form, error) {
	if err := form.LoadDraft(path, d); err != nil {
		return nil, err
	}
	return d.Form()
}

func printRecord[T record, D draft](a *app, r resource[T, D], v T) error {
	if a.jsonOutput() {
		return renderJSON(a.out, v)
	}
	return renderTable(a.out, r.headers, [][]string{r.row(v)})
}

func skillsCmd(a *app) *cobra.Command {
	return resourceCmd(a, resource[domain.Skill, *form.SkillDraft]{
		name:     "skills",
		singular: "skill",
		slice:    (*store.Store).Skills,
		headers:  []string{"ID", "Name", "Category", "Level", "Tags", "Created"},
		row: func(s domain.Skill) []string {
			return []string{
				s.ID,
				s.SkillName,
				categoryStyle(s.SkillCategory).Render(orDash(s.SkillCategory)),
				orDash(s.Level),
				joinList(s.Tags, 4),
				formatDate(s.CreatedAt),
			}
		},
		newDraft:  func() *form.SkillDraft { return &form.SkillDraft{Description: form.NewListField(), Tags: form.NewListField()} },
		draftFrom: form.DraftFromSkill,
		filter:    domain.FilterSkillsByCategory,
		noMatch: func(all []domain.Skill, category string) string {
			return fmt.Sprintf("No skills in category %q. Categories: %s.", category, strings.Join(domain.Categories(all), ", "))
		},
	})
}

func projectsCmd(a *app) *cobra.Command {
	return resourceCmd(a, resource[domain.Project, *form.ProjectDraft]{
		name:     "projects",
		singular: "project",
		slice:    (*store.Store).Projects,
		headers:  []string{"ID", "Name", "Role", "Tech", "Live", "Created"},
		row: func(p domain.Project) []string {
			return []string{
				p.ID,
				p.ProjectName,
				orDash(p.Role),
				joinList(p.TechStack, 4),
				orDash(p.LiveLink),
				formatDate(p.CreatedAt),
			}
		},
		newDraft:  func() *form.ProjectDraft { return &form.ProjectDraft{} },
		draftFrom: form.DraftFromProject,
	})
}

func experiencesCmd(a *app) *cobra.Command {
	return resourceCmd(a, resource[domain.Experience, *form.ExperienceDraft]{
		name:     "experiences",
		singular: "experience",
		slice:    (*store.Store).Experiences,
		headers:  []string{"ID", "Company", "Role", "Duration", "Mode", "Created"},
		row: func(e domain.Experience) []string {
			return []string{
				e.ID,
				e.CompanyName,
				e.WorkedAs,
				orDash(e.Duration),
				workModeCell(e.WorkMode),
				formatDate(e.CreatedAt),
			}
		},
		newDraft:  func() *form.ExperienceDraft { return &form.ExperienceDraft{} },
		draftFrom: form.DraftFromExperience,
	})
}

func certificationsCmd(a *app) *cobra.Command {
	return resourceCmd(a, resource[domain.Certification, *form.CertificationDraft]{
		name:     "certifications",
		singular: "certification",
		slice:    (*store.Store).Certifications,
		headers:  []string{"ID", "Title", "Issuer", "Issued", "Credential"},
		row: func(c domain.Certification) []string {
			return []string{
				c.ID,
				c.Title,
				c.Issuer,
				orDash(c.IssueDate),
				orDash(c.CredentialID),
			}
		},
		newDraft:  func() *form.CertificationDraft { return &form.CertificationDraft{} },
		draftFrom: form.DraftFromCertification,
	})
}

// workModeCell highlights a work mode the site does not know.
func workModeCell(m domain.WorkMode) string {
	if m == "" {
		return "-"
	}
	if !m.Valid() {
		return errStyle.Render(m.String())
	}
	return m.String()
}
