package form

import (
	"encoding/json"
	"fmt"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// addList appends the non-blank values of f as repeated fields under key.
func addList(form *transport.Form, key string, f ListField) {
	if values := f.Values(); len(values) > 0 {
		form.Add(key, values...)
	}
}

func addFile(form *transport.Form, key, path string) {
	if path != "" {
		form.File(key, path)
	}
}

// SkillDraft is the editable copy of a Skill. IconFile is a local path
// uploaded as the icon.
type SkillDraft struct {
	SkillName     string    `toml:"skillName" validate:"required"`
	SkillCategory string    `toml:"skillCategory" validate:"required"`
	Description   ListField `toml:"description"`
	Level         string    `toml:"level,omitempty"`
	Tags          ListField `toml:"tags"`
	IconFile      string    `toml:"iconFile,omitempty"`
}

func (d *SkillDraft) Validate() error { return check("skill", d) }

// Form validates the draft and builds its multipart payload.
func (d *SkillDraft) Form() (*transport.Form, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	f := transport.NewForm().
		Set("skillName", d.SkillName).
		Set("skillCategory", d.SkillCategory).
		SetIfNotEmpty("level", d.Level)
	addList(f, "description", d.Description)
	addList(f, "tags", d.Tags)
	addFile(f, "skillIcon", d.IconFile)
	return f, nil
}

// DraftFromSkill prefills a draft for editing s.
func DraftFromSkill(s domain.Skill) *SkillDraft {
	return &SkillDraft{
		SkillName:     s.SkillName,
		SkillCategory: s.SkillCategory,
		Description:   NewListField(s.Description.Compact()...),
		Level:         s.Level,
		Tags:          NewListField(s.Tags.Compact()...),
	}
}

// ProjectDraft is the editable copy of a Project.
type ProjectDraft struct {
	ProjectName    string    `toml:"projectName" validate:"required"`
	ClientName     string    `toml:"clientName,omitempty"`
	Role           string    `toml:"role,omitempty"`
	Duration       string    `toml:"duration,omitempty"`
	TechStack      ListField `toml:"techStack" validate:"hasvalue"`
	Features       ListField `toml:"features"`
	RepoLink       string    `toml:"githubLink,omitempty" validate:"omitempty,url"`
	LiveLink       string    `toml:"liveLink,omitempty" validate:"omitempty,url"`
	Description    ListField `toml:"description" validate:"hasvalue"`
	TargetAudience ListField `toml:"targetAudience"`
	ImageFiles     []string  `toml:"imageFiles,omitempty"`
}

func (d *ProjectDraft) Validate() error { return check("project", d) }

// Form validates the draft and builds its multipart payload.
func (d *ProjectDraft) Form() (*transport.Form, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	f := transport.NewForm().
		Set("projectName", d.ProjectName).
		SetIfNotEmpty("clientName", d.ClientName).
		SetIfNotEmpty("role", d.Role).
		SetIfNotEmpty("duration", d.Duration).
		SetIfNotEmpty("githubLink", d.RepoLink).
		SetIfNotEmpty("liveLink", d.LiveLink)
	addList(f, "techStack", d.TechStack)
	addList(f, "features", d.Features)
	addList(f, "description", d.Description)
	addList(f, "targetAudience", d.TargetAudience)
	for _, path := range d.ImageFiles {
		addFile(f, "projectImages", path)
	}
	return f, nil
}

// DraftFromProject prefills a draft for editing p.
func DraftFromProject(p domain.Project) *ProjectDraft {
	return &ProjectDraft{
		ProjectName:    p.ProjectName,
		ClientName:     p.ClientName,
		Role:           p.Role,
		Duration:       p.Duration,
		TechStack:      NewListField(p.TechStack.Compact()...),
		Features:       NewListField(p.Features.Compact()...),
		RepoLink:       p.RepoLink,
		LiveLink:       p.LiveLink,
		Description:    NewListField(p.Description.Compact()...),
		TargetAudience: NewListField(p.TargetAudience.Compact()...),
	}
}

// ExperienceDraft is the editable copy of an Experience.
type ExperienceDraft struct {
	CompanyName         string    `toml:"companyName" validate:"required"`
	CompanyAddress      string    `toml:"companyAddress,omitempty"`
	CompanyWebsite      string    `toml:"companyWebsite,omitempty" validate:"omitempty,url"`
	CompanyType         string    `toml:"companyType,omitempty"`
	WorkedAs            string    `toml:"workedAs" validate:"required"`
	Duration            string    `toml:"duration,omitempty"`
	Location            string    `toml:"location,omitempty"`
	WorkMode            string    `toml:"workMode,omitempty" validate:"omitempty,oneof=on-site remote hybrid"`
	Description         ListField `toml:"description" validate:"hasvalue"`
	KeyResponsibilities ListField `toml:"keyResponsibilities" validate:"hasvalue"`
	TechnologiesUsed    ListField `toml:"technologiesUsed"`
	ImageFile           string    `toml:"imageFile,omitempty"`
}

func (d *ExperienceDraft) Validate() error {
	if d.WorkMode != "" {
		if mode, err := domain.ParseWorkMode(d.WorkMode); err == nil {
			d.WorkMode = mode.String()
		}
	}
	return check("experience", d)
}

// Form validates the draft and builds its multipart payload.
func (d *ExperienceDraft) Form() (*transport.Form, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	f := transport.NewForm().
		Set("companyName", d.CompanyName).
		SetIfNotEmpty("companyAddress", d.CompanyAddress).
		SetIfNotEmpty("companyWebsite", d.CompanyWebsite).
		SetIfNotEmpty("companyType", d.CompanyType).
		Set("workedAs", d.WorkedAs).
		SetIfNotEmpty("duration", d.Duration).
		SetIfNotEmpty("location", d.Location).
		SetIfNotEmpty("workMode", d.WorkMode)
	addList(f, "description", d.Description)
	addList(f, "keyResponsibilities", d.KeyResponsibilities)
	addList(f, "technologiesUsed", d.TechnologiesUsed)
	addFile(f, "image", d.ImageFile)
	return f, nil
}

// DraftFromExperience prefills a draft for editing e.
func DraftFromExperience(e domain.Experience) *ExperienceDraft {
	return &ExperienceDraft{
		CompanyName:         e.CompanyName,
		CompanyAddress:      e.CompanyAddress,
		CompanyWebsite:      e.CompanyWebsite,
		CompanyType:         e.CompanyType,
		WorkedAs:            e.WorkedAs,
		Duration:            e.Duration,
		Location:            e.Location,
		WorkMode:            e.WorkMode.String(),
		Description:         NewListField(e.Description.Compact()...),
		KeyResponsibilities: NewListField(e.KeyResponsibilities.Compact()...),
		TechnologiesUsed:    NewListField(e.TechnologiesUsed.Compact()...),
	}
}

// CertificationDraft is the editable copy of a Certification.
type CertificationDraft struct {
	Title         string    `toml:"title" validate:"required"`
	Issuer        string    `toml:"issuer" validate:"required"`
	IssueDate     string    `toml:"issueDate,omitempty"`
	CredentialID  string    `toml:"credentialId,omitempty"`
	CredentialURL string    `toml:"credentialUrl,omitempty" validate:"omitempty,url"`
	Description   ListField `toml:"description"`
	ImageFile     string    `toml:"imageFile,omitempty"`
}

func (d *CertificationDraft) Validate() error { return check("certification", d) }

// Form validates the draft and builds its multipart payload.
func (d *CertificationDraft) Form() (*transport.Form, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	f := transport.NewForm().
		Set("title", d.Title).
		Set("issuer", d.Issuer).
		SetIfNotEmpty("issueDate", d.IssueDate).
		SetIfNotEmpty("credentialId", d.CredentialID).
		SetIfNotEmpty("credentialUrl", d.CredentialURL)
	addList(f, "description", d.Description)
	addFile(f, "image", d.ImageFile)
	return f, nil
}

// DraftFromCertification prefills a draft for editing c.
func DraftFromCertification(c domain.Certification) *CertificationDraft {
	return &CertificationDraft{
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		CredentialID:  c.CredentialID,
		CredentialURL: c.CredentialURL,
		Description:   NewListField(c.Description.Compact()...),
	}
}

// AboutDraft is the editable copy of the About profile. The resume and
// profile image can be sent with it or uploaded on their own.
type AboutDraft struct {
	Role             string            `toml:"role" validate:"required"`
	Quote            string            `toml:"quote,omitempty"`
	Description      ListField         `toml:"description" validate:"hasvalue"`
	Email            string            `toml:"email,omitempty" validate:"omitempty,email"`
	Phone            string            `toml:"phone,omitempty"`
	Address          string            `toml:"address,omitempty"`
	SocialLinks      map[string]string `toml:"socialLinks,omitempty" validate:"omitempty,dive,omitempty,url"`
	ResumeFile       string            `toml:"resumeFile,omitempty"`
	ProfileImageFile string            `toml:"profileImageFile,omitempty"`
}

func (d *AboutDraft) Validate() error { return check("about", d) }

// Form validates the draft and builds its multipart payload. Social links
// travel as one JSON-encoded field.
func (d *AboutDraft) Form() (*transport.Form, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	f := transport.NewForm().
		Set("role", d.Role).
		SetIfNotEmpty("quote", d.Quote).
		SetIfNotEmpty("email", d.Email).
		SetIfNotEmpty("phone", d.Phone).
		SetIfNotEmpty("address", d.Address)
	addList(f, "description", d.Description)
	if len(d.SocialLinks) > 0 {
		raw, err := json.Marshal(d.SocialLinks)
		if err != nil {
			return nil, fmt.Errorf("encode social links: %w", err)
		}
		f.Set("socialLinks", string(raw))
	}
	addFile(f, "resume", d.ResumeFile)
	addFile(f, "profileImage", d.ProfileImageFile)
	return f, nil
}

// DraftFromAbout prefills a draft for editing a.
func DraftFromAbout(a domain.About) *AboutDraft {
	links := make(map[string]string, len(a.SocialLinks))
	for k, v := range a.SocialLinks {
		links[k] = v
	}
	return &AboutDraft{
		Role:        a.Role,
		Quote:       a.Quote,
		Description: NewListField(a.Description.Compact()...),
		Email:       a.Email,
		Phone:       a.Phone,
		Address:     a.Address,
		SocialLinks: links,
	}
}

// ResumeForm is the payload of a resume upload.
func ResumeForm(path string) (*transport.Form, error) {
	if path == "" {
		return nil, fmt.Errorf("resume: no file given")
	}
	return transport.NewForm().File("resume", path), nil
}

// ProfileImageForm is the payload of a profile image upload.
func ProfileImageForm(path string) (*transport.Form, error) {
	if path == "" {
		return nil, fmt.Errorf("profile image: no file given")
	}
	return transport.NewForm().File("profileImage", path), nil
}

// ContactDraft is a message from the public contact form. It is sent as JSON.
type ContactDraft struct {
	Name    string `toml:"name" json:"name" validate:"required"`
	Email   string `toml:"email" json:"email" validate:"required,email"`
	Subject string `toml:"subject,omitempty" json:"subject,omitempty"`
	Message string `toml:"message" json:"message" validate:"required"`
}

func (d *ContactDraft) Validate() error { return check("contact message", d) }

// Body validates the draft and returns the JSON payload.
func (d *ContactDraft) Body() (ContactDraft, error) {
	if err := d.Validate(); err != nil {
		return ContactDraft{}, err
	}
	return *d, nil
}
