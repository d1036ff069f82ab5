package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultGradient = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"

// URLResolver turns a stored media path into a public URL.
type URLResolver interface {
	URL(path string) string
}

// Company is one subsidiary of the group.
type Company struct {
	ID                  uint                  `gorm:"column:id;primaryKey" json:"id"`
	Name                string                `gorm:"column:name;size:100;not null" json:"name"`
	Slug                string                `gorm:"column:slug;size:100;uniqueIndex;not null" json:"slug"`
	Description         string                `gorm:"column:description;type:text;not null" json:"description"`
	DetailedDescription string                `gorm:"column:detailed_description;type:text" json:"detailed_description"`
	Icon                string                `gorm:"column:icon;size:10" json:"icon"`
	Logo                string                `gorm:"column:logo;size:500" json:"logo"`
	Gradient            string                `gorm:"column:gradient;size:200" json:"gradient"`
	Services            StringList            `gorm:"column:services;type:text" json:"services"`
	KPIs                StringList            `gorm:"column:kpis;type:text" json:"kpis"`
	Active              bool                  `gorm:"column:active;index" json:"active"`
	CreatedAt           time.Time             `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time             `gorm:"column:updated_at" json:"updated_at"`
	ProjectImages       []CompanyProjectImage `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"project_images,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

// BeforeSave fills the display defaults.
func (c *Company) BeforeSave(tx *gorm.DB) error {
	if c.Gradient == "" {
		c.Gradient = DefaultGradient
	}
	return nil
}

// ServicesList returns the ordered services, never nil.
func (c *Company) ServicesList() []string {
	if c.Services == nil {
		return []string{}
	}
	return c.Services
}

// KPIsList returns the ordered KPIs, never nil.
func (c *Company) KPIsList() []string {
	if c.KPIs == nil {
		return []string{}
	}
	return c.KPIs
}

// URL is the public detail page path.
func (c *Company) URL() string {
	return "/companies/" + c.Slug + "/"
}

// CompanyProjectImage is a project photo shown on a company's page.
type CompanyProjectImage struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	CompanyID   uint      `gorm:"column:company_id;not null;index" json:"company_id"`
	Image       string    `gorm:"column:image;size:500;not null" json:"image"`
	Title       string    `gorm:"column:title;size:200;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CompanyProjectImage) TableName() string {
	return "company_project_images"
}

// ProjectImageOrder is the display order of project images.
const ProjectImageOrder = "sort_order ASC, created_at ASC"
