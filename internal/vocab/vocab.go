// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab lists the namespaces, classes and properties read by the
// parsers.
package vocab

const (
	RDF          = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS         = "http://www.w3.org/2000/01/rdf-schema#"
	OWL          = "http://www.w3.org/2002/07/owl#"
	XSD          = "http://www.w3.org/2001/XMLSchema#"
	DCT          = "http://purl.org/dc/terms/"
	DCAT         = "http://www.w3.org/ns/dcat#"
	DCATNO       = "https://data.norge.no/vocabulary/dcatno#"
	DCATAP       = "http://data.europa.eu/r5r/"
	FOAF         = "http://xmlns.com/foaf/0.1/"
	SKOS         = "http://www.w3.org/2004/02/skos/core#"
	SKOSXL       = "http://www.w3.org/2008/05/skos-xl#"
	SKOSNO       = "https://data.norge.no/vocabulary/skosno#"
	EUVOC        = "http://publications.europa.eu/ontology/euvoc#"
	VCARD        = "http://www.w3.org/2006/vcard/ns#"
	ADMS         = "http://www.w3.org/ns/adms#"
	CV           = "http://data.europa.eu/m8g/"
	PROV         = "http://www.w3.org/ns/prov#"
	ModellDCATNO = "https://data.norge.no/vocabulary/modelldcatno#"
	Schema       = "http://schema.org/"
)

// rdf, rdfs, owl
const (
	RDFType        = RDF + "type"
	RDFValue       = RDF + "value"
	RDFSLabel      = RDFS + "label"
	RDFSSeeAlso    = RDFS + "seeAlso"
	OWLVersionInfo = OWL + "versionInfo"
	XSDBoolean     = XSD + "boolean"
	XSDDate        = XSD + "date"
	XSDDateTime    = XSD + "dateTime"
)

// dct
const (
	DCTIdentifier    = DCT + "identifier"
	DCTTitle         = DCT + "title"
	DCTDescription   = DCT + "description"
	DCTPublisher     = DCT + "publisher"
	DCTIssued        = DCT + "issued"
	DCTModified      = DCT + "modified"
	DCTLanguage      = DCT + "language"
	DCTSpatial       = DCT + "spatial"
	DCTTemporal      = DCT + "temporal"
	DCTAccessRights  = DCT + "accessRights"
	DCTProvenance    = DCT + "provenance"
	DCTAccrualPeriod = DCT + "accrualPeriodicity"
	DCTType          = DCT + "type"
	DCTConformsTo    = DCT + "conformsTo"
	DCTLicense       = DCT + "license"
	DCTFormat        = DCT + "format"
	DCTSubject       = DCT + "subject"
	DCTRelation      = DCT + "relation"
	DCTSource        = DCT + "source"
	DCTCreated       = DCT + "created"
	DCTReplaces      = DCT + "replaces"
	DCTIsReplacedBy  = DCT + "isReplacedBy"
	DCTRequires      = DCT + "requires"
	DCTHasPart       = DCT + "hasPart"
	DCTIsPartOf      = DCT + "isPartOf"
	DCTRightsHolder  = DCT + "rightsHolder"
	DCTAudience      = DCT + "audience"
	DCTValid         = DCT + "valid"
	DCTPeriodOfTime  = DCT + "PeriodOfTime"
	DCTMediaType     = DCT + "MediaType"
)

// dcat
const (
	DCATCatalog             = DCAT + "Catalog"
	DCATCatalogRecord       = DCAT + "CatalogRecord"
	DCATDataset             = DCAT + "Dataset"
	DCATDatasetSeries       = DCAT + "DatasetSeries"
	DCATDataService         = DCAT + "DataService"
	DCATDistribution        = DCAT + "Distribution"
	DCATDatasetProp         = DCAT + "dataset"
	DCATServiceProp         = DCAT + "service"
	DCATDistributionProp    = DCAT + "distribution"
	DCATKeyword             = DCAT + "keyword"
	DCATTheme               = DCAT + "theme"
	DCATContactPoint        = DCAT + "contactPoint"
	DCATLandingPage         = DCAT + "landingPage"
	DCATAccessURL           = DCAT + "accessURL"
	DCATDownloadURL         = DCAT + "downloadURL"
	DCATMediaType           = DCAT + "mediaType"
	DCATAccessService       = DCAT + "accessService"
	DCATEndpointURL         = DCAT + "endpointURL"
	DCATEndpointDescription = DCAT + "endpointDescription"
	DCATServesDataset       = DCAT + "servesDataset"
	DCATStartDate           = DCAT + "startDate"
	DCATEndDate             = DCAT + "endDate"
	DCATInSeries            = DCAT + "inSeries"
	DCATPrev                = DCAT + "prev"
	DCATLast                = DCAT + "last"
	DCATFirst               = DCAT + "first"
	DCATSpatialResolution   = DCAT + "spatialResolutionInMeters"
	DCATTemporalResolution  = DCAT + "temporalResolution"
	DCATQualifiedRelation   = DCAT + "qualifiedRelation"
)

// dcatno, dcatap
const (
	DCATNOContainsEvent         = DCATNO + "containsEvent"
	DCATNOAccessRightsComment   = DCATNO + "accessRightsComment"
	DCATAPApplicableLegislation = DCATAP + "applicableLegislation"
	DCATAPAvailability          = DCATAP + "availability"
	DCATAPHVDCategory           = DCATAP + "hvdCategory"
)

// foaf, prov, adms, schema
const (
	FOAFPrimaryTopic          = FOAF + "primaryTopic"
	FOAFName                  = FOAF + "name"
	FOAFHomepage              = FOAF + "homepage"
	FOAFPage                  = FOAF + "page"
	PROVQualifiedAttribution  = PROV + "qualifiedAttribution"
	PROVAgent                 = PROV + "agent"
	ADMSIdentifier            = ADMS + "identifier"
	ADMSSample                = ADMS + "sample"
	ADMSStatus                = ADMS + "status"
	ADMSVersionNotes          = ADMS + "versionNotes"
	SchemaStartDate           = Schema + "startDate"
	SchemaEndDate             = Schema + "endDate"
	SchemaIsAccessibleForFree = Schema + "isAccessibleForFree"
)

// skos, skos-xl, skosno, euvoc
const (
	SKOSConcept                 = SKOS + "Concept"
	SKOSCollection              = SKOS + "Collection"
	SKOSMember                  = SKOS + "member"
	SKOSPrefLabel               = SKOS + "prefLabel"
	SKOSAltLabel                = SKOS + "altLabel"
	SKOSHiddenLabel             = SKOS + "hiddenLabel"
	SKOSDefinition              = SKOS + "definition"
	SKOSExample                 = SKOS + "example"
	SKOSScopeNote               = SKOS + "scopeNote"
	SKOSNotation                = SKOS + "notation"
	SKOSInScheme                = SKOS + "inScheme"
	SKOSBroader                 = SKOS + "broader"
	SKOSNarrower                = SKOS + "narrower"
	SKOSRelated                 = SKOS + "related"
	SKOSXLPrefLabel             = SKOSXL + "prefLabel"
	SKOSXLAltLabel              = SKOSXL + "altLabel"
	SKOSXLHiddenLabel           = SKOSXL + "hiddenLabel"
	SKOSXLLiteralForm           = SKOSXL + "literalForm"
	SKOSNODefinisjon            = SKOSNO + "definisjon"
	SKOSNOBetydningsbeskrivelse = SKOSNO + "betydningsbeskrivelse"
	SKOSNOForholdTilKilde       = SKOSNO + "forholdTilKilde"
	SKOSNOValueRange            = SKOSNO + "omfang"
	SKOSNOAllowed               = SKOSNO + "tillattTerm"
	SKOSNODiscouraged           = SKOSNO + "frarådetTerm"
	EUVOCXLDefinition           = EUVOC + "xlDefinition"
	EUVOCStatus                 = EUVOC + "status"
	EUVOCStartDate              = EUVOC + "startDate"
	EUVOCEndDate                = EUVOC + "endDate"
)

// vcard
const (
	VCARDHasEmail         = VCARD + "hasEmail"
	VCARDHasTelephone     = VCARD + "hasTelephone"
	VCARDHasURL           = VCARD + "hasURL"
	VCARDFn               = VCARD + "fn"
	VCARDOrganizationUnit = VCARD + "organization-unit"
	VCARDHasValue         = VCARD + "hasValue"
)

// CPSV-AP (cv)
const (
	CVBusinessEvent         = CV + "BusinessEvent"
	CVLifeEvent             = CV + "LifeEvent"
	CVEvent                 = CV + "Event"
	CVRelatedService        = CV + "relatedService"
	CVMayHave               = CV + "mayHave"
	CVHasCompetentAuthority = CV + "hasCompetentAuthority"
)

// ModellDCAT-AP-NO
const (
	ModellDCATNOInformationModel           = ModellDCATNO + "InformationModel"
	ModellDCATNOModel                      = ModellDCATNO + "model"
	ModellDCATNOContainsModelElement       = ModellDCATNO + "containsModelElement"
	ModellDCATNOInformationModelIdentifier = ModellDCATNO + "informationModelIdentifier"
)
