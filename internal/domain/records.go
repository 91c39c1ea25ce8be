package domain

import "time"

// Keyed is implemented by every list record. Key returns the server-assigned
// identifier, the only key used to locate a record in memory.
type Keyed interface {
	Key() string
}

// Timestamps are set by the server.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Created returns the creation time, used for display ordering.
func (t Timestamps) Created() time.Time { return t.CreatedAt }

// Skill is one entry of the skills section. Category is free text and drives
// colour and filtering on the client.
type Skill struct {
	ID            string     `json:"_id"`
	SkillName     string     `json:"skillName"`
	SkillCategory string     `json:"skillCategory"`
	SkillIcon     string     `json:"skillIcon,omitempty"`
	Description   StringList `json:"description,omitempty"`
	Tags          StringList `json:"tags,omitempty"`
	Level         string     `json:"level,omitempty"`
	Timestamps
}

func (s Skill) Key() string { return s.ID }

// Project is a portfolio project.
type Project struct {
	ID             string     `json:"_id"`
	ProjectName    string     `json:"projectName"`
	ClientName     string     `json:"clientName,omitempty"`
	Role           string     `json:"role,omitempty"`
	Duration       string     `json:"duration,omitempty"`
	TechStack      StringList `json:"techStack"`
	Features       StringList `json:"features"`
	RepoLink       string     `json:"githubLink,omitempty"`
	LiveLink       string     `json:"liveLink,omitempty"`
	Description    StringList `json:"description"`
	TargetAudience StringList `json:"targetAudience"`
	Images         StringList `json:"projectImages,omitempty"`
	Timestamps
}

func (p Project) Key() string { return p.ID }

// Experience is a work history entry.
type Experience struct {
	ID                  string     `json:"_id"`
	CompanyName         string     `json:"companyName"`
	CompanyAddress      string     `json:"companyAddress,omitempty"`
	CompanyWebsite      string     `json:"companyWebsite,omitempty"`
	CompanyType         string     `json:"companyType,omitempty"`
	WorkedAs            string     `json:"workedAs"`
	Duration            string     `json:"duration,omitempty"`
	Location            string     `json:"location,omitempty"`
	WorkMode            WorkMode   `json:"workMode,omitempty"`
	Description         StringList `json:"description"`
	KeyResponsibilities StringList `json:"keyResponsibilities"`
	TechnologiesUsed    StringList `json:"technologiesUsed"`
	Image               string     `json:"image,omitempty"`
	Timestamps
}

func (e Experience) Key() string { return e.ID }

// Certification is a certificate or course completion.
type Certification struct {
	ID            string     `json:"_id"`
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	IssueDate     string     `json:"issueDate,omitempty"`
	CredentialID  string     `json:"credentialId,omitempty"`
	CredentialURL string     `json:"credentialUrl,omitempty"`
	Description   StringList `json:"description"`
	Image         string     `json:"image,omitempty"`
	Timestamps
}

func (c Certification) Key() string { return c.ID }

// About is the singleton profile of the site owner.
type About struct {
	ID           string            `json:"_id"`
	Role         string            `json:"role"`
	Quote        string            `json:"quote,omitempty"`
	Description  StringList        `json:"description"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Address      string            `json:"address,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
	Resume       string            `json:"resume,omitempty"`
	ProfileImage string            `json:"profileImage,omitempty"`
	IsActive     bool              `json:"isActive"`
	Timestamps
}

func (a About) Key() string { return a.ID }

// ContactResponse is a message submitted through the public contact form.
type ContactResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
	Timestamps
}

func (c ContactResponse) Key() string { return c.ID }

// User is the signed-in administrator.
type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
