// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the canonical records produced by the parsers and
// the configuration shared by the CLI and the record store.
//
// Every record field is optional. Scalars and sub-records are pointers and
// lists are slices; nil means the source graph carried no usable value.
// Fields tagged merge:"defaultfalse" are yes/no flags that become false
// when no contributing dialect supplies them.
package types

// Kind names one of the resource kinds the service parses.
type Kind string

const (
	KindDataset          Kind = "dataset"
	KindConcept          Kind = "concept"
	KindDataService      Kind = "dataservice"
	KindEvent            Kind = "event"
	KindInformationModel Kind = "informationmodel"
)

// Kinds lists every resource kind in a stable order.
var Kinds = []Kind{KindDataset, KindConcept, KindDataService, KindEvent, KindInformationModel}

// Language tags kept in a LocalizedStrings bundle.
const (
	LangNB = "nb"
	LangNN = "nn"
	LangNO = "no"
	LangEN = "en"
)

// LocalizedStrings holds at most one value per supported language.
type LocalizedStrings struct {
	NB string `json:"nb,omitempty" yaml:"nb,omitempty"`
	NN string `json:"nn,omitempty" yaml:"nn,omitempty"`
	NO string `json:"no,omitempty" yaml:"no,omitempty"`
	EN string `json:"en,omitempty" yaml:"en,omitempty"`
}

// Set stores value under lang unless that language already has a value or
// is not supported. It reports whether the value was stored.
func (l *LocalizedStrings) Set(lang, value string) bool {
	var slot *string
	switch lang {
	case LangNB:
		slot = &l.NB
	case LangNN:
		slot = &l.NN
	case LangNO:
		slot = &l.NO
	case LangEN:
		slot = &l.EN
	default:
		return false
	}
	if *slot != "" || value == "" {
		return false
	}
	*slot = value
	return true
}

// IsEmpty reports whether no language carries a value.
func (l *LocalizedStrings) IsEmpty() bool {
	return l == nil || (l.NB == "" && l.NN == "" && l.NO == "" && l.EN == "")
}

// HarvestMetadata records when the resource was first harvested and when
// the harvester last saw it change.
type HarvestMetadata struct {
	FirstHarvested *string `json:"first_harvested,omitempty" yaml:"first_harvested,omitempty"`
	Changed        *string `json:"changed,omitempty" yaml:"changed,omitempty"`
}

// Reference points to a controlled-vocabulary concept or a linked document.
type Reference struct {
	URI       *string           `json:"uri,omitempty" yaml:"uri,omitempty"`
	Code      *string           `json:"code,omitempty" yaml:"code,omitempty"`
	PrefLabel *LocalizedStrings `json:"pref_label,omitempty" yaml:"pref_label,omitempty"`
}

// Organization is a publisher or other responsible agent.
type Organization struct {
	URI       *string           `json:"uri,omitempty" yaml:"uri,omitempty"`
	ID        *string           `json:"id,omitempty" yaml:"id,omitempty"`
	Name      *string           `json:"name,omitempty" yaml:"name,omitempty"`
	PrefLabel *LocalizedStrings `json:"pref_label,omitempty" yaml:"pref_label,omitempty"`
	Homepage  *string           `json:"homepage,omitempty" yaml:"homepage,omitempty"`
}

// ContactPoint is a vCard contact.
type ContactPoint struct {
	FullName         *string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	OrganizationUnit *string `json:"organization_unit,omitempty" yaml:"organization_unit,omitempty"`
	Email            *string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone            *string `json:"phone,omitempty" yaml:"phone,omitempty"`
	URL              *string `json:"url,omitempty" yaml:"url,omitempty"`
}

// PeriodOfTime is a temporal interval with optional open ends.
type PeriodOfTime struct {
	StartDate *string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// MediaType identifies a file format or media type.
type MediaType struct {
	URI  *string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Code *string `json:"code,omitempty" yaml:"code,omitempty"`
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Distribution is one available form of a dataset.
type Distribution struct {
	URI           *string           `json:"uri,omitempty" yaml:"uri,omitempty"`
	Title         *LocalizedStrings `json:"title,omitempty" yaml:"title,omitempty"`
	Description   *LocalizedStrings `json:"description,omitempty" yaml:"description,omitempty"`
	AccessURL     []string          `json:"access_url,omitempty" yaml:"access_url,omitempty"`
	DownloadURL   []string          `json:"download_url,omitempty" yaml:"download_url,omitempty"`
	Format        []MediaType       `json:"format,omitempty" yaml:"format,omitempty"`
	License       []Reference       `json:"license,omitempty" yaml:"license,omitempty"`
	ConformsTo    []Reference       `json:"conforms_to,omitempty" yaml:"conforms_to,omitempty"`
	AccessService []string          `json:"access_service,omitempty" yaml:"access_service,omitempty"`
}

// Catalog is the container a resource is published in: a DCAT catalog, or
// a SKOS collection for concepts.
type Catalog struct {
	URI         *string           `json:"uri,omitempty" yaml:"uri,omitempty"`
	ID          *string           `json:"id,omitempty" yaml:"id,omitempty"`
	Title       *LocalizedStrings `json:"title,omitempty" yaml:"title,omitempty"`
	Description *LocalizedStrings `json:"description,omitempty" yaml:"description,omitempty"`
	Publisher   *Organization     `json:"publisher,omitempty" yaml:"publisher,omitempty"`
}

// Record is implemented by every canonical record kind.
type Record interface {
	// Identity returns the external id and subject IRI, empty when unset.
	Identity() (id, uri string)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (d *Dataset) Identity() (string, string)          { return deref(d.ID), deref(d.URI) }
func (c *Concept) Identity() (string, string)          { return deref(c.ID), deref(c.URI) }
func (s *DataService) Identity() (string, string)      { return deref(s.ID), deref(s.URI) }
func (e *Event) Identity() (string, string)            { return deref(e.ID), deref(e.URI) }
func (m *InformationModel) Identity() (string, string) { return deref(m.ID), deref(m.URI) }
