package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactStatus tracks staff handling of a contact message.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusReplied   ContactStatus = "replied"
	ContactStatusProcessed ContactStatus = "processed"
)

// ContactStatuses lists the valid statuses in workflow order.
var ContactStatuses = []ContactStatus{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusReplied,
	ContactStatusProcessed,
}

func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ContactService is the group entity a message is addressed to.
type ContactService string

const (
	ServiceAZIGroup ContactService = "azi_group"
	ServiceGSS      ContactService = "gss"
	ServiceSogis    ContactService = "sogis"
	ServiceGolden   ContactService = "golden"
	ServiceAngnie   ContactService = "angnie"
)

// ServiceChoice is a selectable option of the contact form.
type ServiceChoice struct {
	Value ContactService `json:"value"`
	Label string         `json:"label"`
}

var ServiceChoices = []ServiceChoice{
	{ServiceAZIGroup, "AZI GROUP"},
	{ServiceGSS, "Global Songhoy Services (GSS)"},
	{ServiceSogis, "Sogis - Immobilier"},
	{ServiceGolden, "Société Golden - Transport"},
	{ServiceAngnie, "Angnie Mali - Propreté"},
}

func (s ContactService) Valid() bool {
	for _, c := range ServiceChoices {
		if s == c.Value {
			return true
		}
	}
	return false
}

// Label returns the display name of the service, or the raw value.
func (s ContactService) Label() string {
	for _, c := range ServiceChoices {
		if s == c.Value {
			return c.Label
		}
	}
	return string(s)
}

// Contact is a message left through the public contact form.
type Contact struct {
	ID        uint           `gorm:"column:id;primaryKey" json:"id"`
	Name      string         `gorm:"column:name;size:100;not null" json:"name"`
	Email     string         `gorm:"column:email;size:254;not null;index" json:"email"`
	Phone     string         `gorm:"column:phone;size:20" json:"phone"`
	Company   string         `gorm:"column:company;size:100" json:"company"`
	Service   ContactService `gorm:"column:service;size:10" json:"service"`
	Message   string         `gorm:"column:message;type:text;not null" json:"message"`
	Status    ContactStatus  `gorm:"column:status;size:10;not null;index" json:"status"`
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate stamps new messages.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
	return nil
}
