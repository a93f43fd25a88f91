// Package entities contains core business entities.
package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Source is the acquisition channel of a lead.
type Source string

const (
	SourceWebsite       Source = "Website"
	SourceContactForm   Source = "Contact Form"
	SourceReferral      Source = "Referral"
	SourceSocialMedia   Source = "Social Media"
	SourceEmailCampaign Source = "Email Campaign"
	SourceColdOutreach  Source = "Cold Outreach"
	SourceEvent         Source = "Event"
)

// Sources lists every known acquisition channel.
var Sources = []Source{
	SourceWebsite,
	SourceContactForm,
	SourceReferral,
	SourceSocialMedia,
	SourceEmailCampaign,
	SourceColdOutreach,
	SourceEvent,
}

// Valid reports whether the source is one of the known channels.
func (s Source) Valid() bool {
	for _, known := range Sources {
		if s == known {
			return true
		}
	}
	return false
}

// Status is the lifecycle stage of a lead.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
)

// Statuses lists every lifecycle stage.
var Statuses = []Status{StatusNew, StatusContacted, StatusConverted}

// Valid reports whether the status is one of the known stages.
func (s Status) Valid() bool {
	return s == StatusNew || s == StatusContacted || s == StatusConverted
}

// Note is a timestamped annotation owned by a lead. Notes are append-only:
// created at the end of the lead's list, removed by id, never edited.
type Note struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// Lead is a prospective customer record. Notes keep insertion order.
type Lead struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Source    Source
	Status    Status
	Notes     []Note
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks field constraints for a lead about to be persisted.
func (l Lead) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&l.Email, validation.Required, validation.Length(1, 200)),
		validation.Field(&l.Source, validation.By(validSource)),
		validation.Field(&l.Status, validation.By(validStatus)),
	)
}

// LeadUpdate is a partial patch over the mutable lead fields. Nil means the
// field is untouched.
type LeadUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Source  *Source
	Status  *Status
}

// Empty reports whether the patch changes nothing.
func (u LeadUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		u.Company == nil && u.Source == nil && u.Status == nil
}

// Validate checks every present field of the patch.
func (u LeadUpdate) Validate() error {
	if u.Name != nil {
		if err := validation.Validate(*u.Name, validation.Required, validation.Length(1, 120)); err != nil {
			return validation.Errors{"Name": err}
		}
	}
	if u.Email != nil {
		if err := validation.Validate(*u.Email, validation.Required, validation.Length(1, 200)); err != nil {
			return validation.Errors{"Email": err}
		}
	}
	if u.Source != nil {
		if err := validSource(*u.Source); err != nil {
			return validation.Errors{"Source": err}
		}
	}
	if u.Status != nil {
		if err := validStatus(*u.Status); err != nil {
			return validation.Errors{"Status": err}
		}
	}
	return nil
}

func validSource(value interface{}) error {
	if s, ok := value.(Source); !ok || !s.Valid() {
		return validation.NewError("validation_source", "must be a known lead source")
	}
	return nil
}

func validStatus(value interface{}) error {
	if s, ok := value.(Status); !ok || !s.Valid() {
		return validation.NewError("validation_status", "must be one of new, contacted, converted")
	}
	return nil
}
