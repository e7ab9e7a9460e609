// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Dataset is the canonical record for a DCAT dataset or dataset series.
type Dataset struct {
	// ID is the external id the record was resolved from.
	ID *string `json:"id,omitempty" yaml:"id,omitempty"`

	// URI is the dataset subject IRI.
	URI *string `json:"uri,omitempty" yaml:"uri,omitempty"`

	Harvest *HarvestMetadata `json:"harvest,omitempty" yaml:"harvest,omitempty"`

	Identifier          []string           `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Title               *LocalizedStrings  `json:"title,omitempty" yaml:"title,omitempty"`
	Description         *LocalizedStrings  `json:"description,omitempty" yaml:"description,omitempty"`
	Publisher           *Organization      `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ContactPoint        []ContactPoint     `json:"contact_point,omitempty" yaml:"contact_point,omitempty"`
	Keyword             []LocalizedStrings `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Theme               []Reference        `json:"theme,omitempty" yaml:"theme,omitempty"`
	Language            []Reference        `json:"language,omitempty" yaml:"language,omitempty"`
	Spatial             []Reference        `json:"spatial,omitempty" yaml:"spatial,omitempty"`
	Temporal            []PeriodOfTime     `json:"temporal,omitempty" yaml:"temporal,omitempty"`
	Issued              *string            `json:"issued,omitempty" yaml:"issued,omitempty"`
	Modified            *string            `json:"modified,omitempty" yaml:"modified,omitempty"`
	LandingPage         []string           `json:"landing_page,omitempty" yaml:"landing_page,omitempty"`
	AccessRights        *Reference         `json:"access_rights,omitempty" yaml:"access_rights,omitempty"`
	AccessRightsComment []string           `json:"access_rights_comment,omitempty" yaml:"access_rights_comment,omitempty"`
	Provenance          *Reference         `json:"provenance,omitempty" yaml:"provenance,omitempty"`
	AccrualPeriodicity  *Reference         `json:"accrual_periodicity,omitempty" yaml:"accrual_periodicity,omitempty"`
	Type                *string            `json:"type,omitempty" yaml:"type,omitempty"`
	ConformsTo          []Reference        `json:"conforms_to,omitempty" yaml:"conforms_to,omitempty"`
	Distribution        []Distribution     `json:"distribution,omitempty" yaml:"distribution,omitempty"`
	Sample              []Distribution     `json:"sample,omitempty" yaml:"sample,omitempty"`

	// ApplicableLegislation and HVDCategory come from DCAT-AP 3 terms and
	// are only read by newer dialects.
	ApplicableLegislation []Reference `json:"applicable_legislation,omitempty" yaml:"applicable_legislation,omitempty"`
	HVDCategory           []Reference `json:"hvd_category,omitempty" yaml:"hvd_category,omitempty"`

	// InSeries is the series this dataset belongs to, Previous the dataset
	// before it in that series. DatasetsInSeries is the ordered member list
	// of a dataset series, newest first.
	InSeries         *string  `json:"in_series,omitempty" yaml:"in_series,omitempty"`
	Previous         *string  `json:"previous,omitempty" yaml:"previous,omitempty"`
	DatasetsInSeries []string `json:"datasets_in_series,omitempty" yaml:"datasets_in_series,omitempty"`

	Catalog *Catalog `json:"catalog,omitempty" yaml:"catalog,omitempty"`

	IsOpenData                 *bool `json:"is_open_data" yaml:"is_open_data" merge:"defaultfalse"`
	IsAuthoritative            *bool `json:"is_authoritative" yaml:"is_authoritative" merge:"defaultfalse"`
	IsRelatedToTransportportal *bool `json:"is_related_to_transportportal" yaml:"is_related_to_transportportal" merge:"defaultfalse"`
}
