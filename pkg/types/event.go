// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EventType distinguishes the two CPSV event classes.
type EventType string

const (
	EventBusiness EventType = "business_event"
	EventLife     EventType = "life_event"
)

// Event is the canonical record for a CPSV business or life event.
type Event struct {
	ID      *string          `json:"id,omitempty" yaml:"id,omitempty"`
	URI     *string          `json:"uri,omitempty" yaml:"uri,omitempty"`
	Harvest *HarvestMetadata `json:"harvest,omitempty" yaml:"harvest,omitempty"`

	Identifier  *string           `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Type        *EventType        `json:"type,omitempty" yaml:"type,omitempty"`
	Title       *LocalizedStrings `json:"title,omitempty" yaml:"title,omitempty"`
	Description *LocalizedStrings `json:"description,omitempty" yaml:"description,omitempty"`
	DctType     []Reference       `json:"dct_type,omitempty" yaml:"dct_type,omitempty"`
	Subject     []string          `json:"subject,omitempty" yaml:"subject,omitempty"`

	// Relation holds dct:relation links (CPSV-AP-NO); RelatedService holds
	// cv:relatedService links (CPSV-AP 3).
	Relation       []string `json:"relation,omitempty" yaml:"relation,omitempty"`
	RelatedService []string `json:"related_service,omitempty" yaml:"related_service,omitempty"`

	CompetentAuthority []Organization `json:"competent_authority,omitempty" yaml:"competent_authority,omitempty"`

	Catalog *Catalog `json:"catalog,omitempty" yaml:"catalog,omitempty"`
}
