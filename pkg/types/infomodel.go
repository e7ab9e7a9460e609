// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// InformationModel is the canonical record for a ModellDCAT-AP-NO
// information model.
type InformationModel struct {
	ID      *string          `json:"id,omitempty" yaml:"id,omitempty"`
	URI     *string          `json:"uri,omitempty" yaml:"uri,omitempty"`
	Harvest *HarvestMetadata `json:"harvest,omitempty" yaml:"harvest,omitempty"`

	Identifier   []string           `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Title        *LocalizedStrings  `json:"title,omitempty" yaml:"title,omitempty"`
	Description  *LocalizedStrings  `json:"description,omitempty" yaml:"description,omitempty"`
	Publisher    *Organization      `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ContactPoint []ContactPoint     `json:"contact_point,omitempty" yaml:"contact_point,omitempty"`
	Keyword      []LocalizedStrings `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Theme        []Reference        `json:"theme,omitempty" yaml:"theme,omitempty"`
	Language     []Reference        `json:"language,omitempty" yaml:"language,omitempty"`
	Issued       *string            `json:"issued,omitempty" yaml:"issued,omitempty"`
	Modified     *string            `json:"modified,omitempty" yaml:"modified,omitempty"`
	VersionInfo  *string            `json:"version_info,omitempty" yaml:"version_info,omitempty"`
	VersionNotes *LocalizedStrings  `json:"version_notes,omitempty" yaml:"version_notes,omitempty"`
	Status       *Reference         `json:"status,omitempty" yaml:"status,omitempty"`
	License      []Reference        `json:"license,omitempty" yaml:"license,omitempty"`
	Homepage     *string            `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Subject      []string           `json:"subject,omitempty" yaml:"subject,omitempty"`
	Provenance   *Reference         `json:"provenance,omitempty" yaml:"provenance,omitempty"`
	Replaces     []string           `json:"replaces,omitempty" yaml:"replaces,omitempty"`
	IsReplacedBy []string           `json:"is_replaced_by,omitempty" yaml:"is_replaced_by,omitempty"`
	HasPart      []string           `json:"has_part,omitempty" yaml:"has_part,omitempty"`
	IsPartOf     []string           `json:"is_part_of,omitempty" yaml:"is_part_of,omitempty"`

	// ModellDCAT-AP-NO 1.0 terms, absent from the 0.x drafts.
	InformationModelIdentifier *string  `json:"information_model_identifier,omitempty" yaml:"information_model_identifier,omitempty"`
	ContainsModelElements      []string `json:"contains_model_elements,omitempty" yaml:"contains_model_elements,omitempty"`

	Catalog *Catalog `json:"catalog,omitempty" yaml:"catalog,omitempty"`

	IsAuthoritative *bool `json:"is_authoritative" yaml:"is_authoritative" merge:"defaultfalse"`
}
