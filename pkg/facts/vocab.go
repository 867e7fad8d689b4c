package facts

// Vocabulary used by the show and performer graphs.
const (
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"
	RDFType   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	SchemaNS        = "http://schema.org/"
	SchemaDuration  = SchemaNS + "duration"
	SchemaStartDate = SchemaNS + "startDate"

	PerformerNS          = "http://example.org/performer/"
	PerformerType        = PerformerNS + "Performer"
	PerformerName        = PerformerNS + "name"
	PerformerDescription = PerformerNS + "description"
	PerformerBirthDate   = PerformerNS + "birthDate"
	PerformerOccupation  = PerformerNS + "occupation"
	PerformerCitizenship = PerformerNS + "citizenship"
	PerformerWebsite     = PerformerNS + "website"
)
