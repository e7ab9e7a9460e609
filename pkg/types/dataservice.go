// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DataService is the canonical record for a DCAT data service (an API).
type DataService struct {
	ID      *string          `json:"id,omitempty" yaml:"id,omitempty"`
	URI     *string          `json:"uri,omitempty" yaml:"uri,omitempty"`
	Harvest *HarvestMetadata `json:"harvest,omitempty" yaml:"harvest,omitempty"`

	Identifier          []string           `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Title               *LocalizedStrings  `json:"title,omitempty" yaml:"title,omitempty"`
	Description         *LocalizedStrings  `json:"description,omitempty" yaml:"description,omitempty"`
	Publisher           *Organization      `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ContactPoint        []ContactPoint     `json:"contact_point,omitempty" yaml:"contact_point,omitempty"`
	EndpointURL         []string           `json:"endpoint_url,omitempty" yaml:"endpoint_url,omitempty"`
	EndpointDescription []string           `json:"endpoint_description,omitempty" yaml:"endpoint_description,omitempty"`
	Format              []MediaType        `json:"format,omitempty" yaml:"format,omitempty"`
	ServesDataset       []string           `json:"serves_dataset,omitempty" yaml:"serves_dataset,omitempty"`
	Keyword             []LocalizedStrings `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Theme               []Reference        `json:"theme,omitempty" yaml:"theme,omitempty"`
	LandingPage         []string           `json:"landing_page,omitempty" yaml:"landing_page,omitempty"`
	ConformsTo          []Reference        `json:"conforms_to,omitempty" yaml:"conforms_to,omitempty"`
	AccessRights        *Reference         `json:"access_rights,omitempty" yaml:"access_rights,omitempty"`
	License             []Reference        `json:"license,omitempty" yaml:"license,omitempty"`
	Issued              *string            `json:"issued,omitempty" yaml:"issued,omitempty"`
	Modified            *string            `json:"modified,omitempty" yaml:"modified,omitempty"`

	// Availability and HVDCategory are DCAT-AP 3 terms.
	Availability *Reference  `json:"availability,omitempty" yaml:"availability,omitempty"`
	HVDCategory  []Reference `json:"hvd_category,omitempty" yaml:"hvd_category,omitempty"`

	Catalog *Catalog `json:"catalog,omitempty" yaml:"catalog,omitempty"`

	IsOpenAccess  *bool `json:"is_open_access" yaml:"is_open_access" merge:"defaultfalse"`
	IsOpenLicense *bool `json:"is_open_license" yaml:"is_open_license" merge:"defaultfalse"`
	IsFree        *bool `json:"is_free" yaml:"is_free" merge:"defaultfalse"`
}
