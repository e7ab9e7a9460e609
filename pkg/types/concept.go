// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Concept is the canonical record for a SKOS concept.
type Concept struct {
	ID      *string          `json:"id,omitempty" yaml:"id,omitempty"`
	URI     *string          `json:"uri,omitempty" yaml:"uri,omitempty"`
	Harvest *HarvestMetadata `json:"harvest,omitempty" yaml:"harvest,omitempty"`

	Identifier        *string            `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	PrefLabel         *LocalizedStrings  `json:"pref_label,omitempty" yaml:"pref_label,omitempty"`
	AltLabel          []LocalizedStrings `json:"alt_label,omitempty" yaml:"alt_label,omitempty"`
	HiddenLabel       []LocalizedStrings `json:"hidden_label,omitempty" yaml:"hidden_label,omitempty"`
	Definition        *Definition        `json:"definition,omitempty" yaml:"definition,omitempty"`
	Publisher         *Organization      `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ContactPoint      []ContactPoint     `json:"contact_point,omitempty" yaml:"contact_point,omitempty"`
	Example           *LocalizedStrings  `json:"example,omitempty" yaml:"example,omitempty"`
	Subject           *LocalizedStrings  `json:"subject,omitempty" yaml:"subject,omitempty"`
	Created           *string            `json:"created,omitempty" yaml:"created,omitempty"`
	Modified          *string            `json:"modified,omitempty" yaml:"modified,omitempty"`
	ValidFromIncluded *string            `json:"valid_from_included,omitempty" yaml:"valid_from_included,omitempty"`
	ValidToIncluded   *string            `json:"valid_to_included,omitempty" yaml:"valid_to_included,omitempty"`
	SeeAlso           []string           `json:"see_also,omitempty" yaml:"see_also,omitempty"`
	Related           []string           `json:"related,omitempty" yaml:"related,omitempty"`
	Replaces          []string           `json:"replaces,omitempty" yaml:"replaces,omitempty"`
	IsReplacedBy      []string           `json:"is_replaced_by,omitempty" yaml:"is_replaced_by,omitempty"`

	// Status is an euvoc status concept; SKOS-AP-NO 1 has no status.
	Status *string `json:"status,omitempty" yaml:"status,omitempty"`

	// Collection is the SKOS collection listing this concept as a member.
	Collection *Catalog `json:"collection,omitempty" yaml:"collection,omitempty"`
}

// Definition is the meaning description of a concept and where it comes from.
type Definition struct {
	Text               *LocalizedStrings  `json:"text,omitempty" yaml:"text,omitempty"`
	Remark             *LocalizedStrings  `json:"remark,omitempty" yaml:"remark,omitempty"`
	SourceRelationship *string            `json:"source_relationship,omitempty" yaml:"source_relationship,omitempty"`
	Sources            []DefinitionSource `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// DefinitionSource is one cited source of a definition.
type DefinitionSource struct {
	URI  *string           `json:"uri,omitempty" yaml:"uri,omitempty"`
	Text *LocalizedStrings `json:"text,omitempty" yaml:"text,omitempty"`
}
