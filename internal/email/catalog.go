package email

// Each axis owns an independent catalog mapping a category to the phrase used
// in its instruction line. A category missing from its catalog is neutral and
// yields no directive at all. Axes never consult each other, so adding an
// axis means adding one scale and one table here.

var toneCatalog = map[Level]string{
	"very_formal": "very formal and professional",
	"formal":      "formal but approachable",
	"neutral":     "balanced and neutral",
	"friendly":    "friendly and conversational",
	"casual":      "casual and relaxed",
}

var lengthCatalog = map[Level]string{
	"very_brief":    "very brief (2-3 sentences)",
	"concise":       "concise (1 short paragraph)",
	"moderate":      "moderate (2-3 paragraphs)",
	"detailed":      "detailed (3-4 paragraphs)",
	"comprehensive": "comprehensive and thorough (4+ paragraphs)",
}

var politenessCatalog = map[Level]string{
	"blunt":       "blunt and to the point, skipping pleasantries",
	"direct":      "direct while staying respectful",
	"courteous":   "courteous with standard pleasantries",
	"polite":      "notably polite and considerate",
	"very_polite": "exceptionally polite and deferential",
}

// The lowest CTA level still produces a directive: telling the model to end
// without an ask is itself an instruction.
var ctaCatalog = map[Level]string{
	"none":      "no call to action; end without asking the recipient for anything",
	"subtle":    "a subtle, low-pressure call to action",
	"clear":     "one clear call to action",
	"strong":    "a strong, explicit call to action",
	"insistent": "an insistent call to action asking for a firm commitment",
}

// "none" is neutral for urgency, so it is absent from the table.
var urgencyCatalog = map[Level]string{
	"low":      "a mild sense of timeliness",
	"moderate": "a moderate sense of urgency",
	"high":     "a high sense of urgency without sounding panicked",
	"critical": "critical urgency; the matter needs immediate attention",
}

var languageCatalog = map[Language]string{
	LanguageSpanish:    "write the entire email in Spanish",
	LanguageFrench:     "write the entire email in French",
	LanguageGerman:     "write the entire email in German",
	LanguagePortuguese: "write the entire email in Portuguese",
	LanguageItalian:    "write the entire email in Italian",
}

var audienceCatalog = map[Audience]string{
	AudienceExecutive:       "senior executives; keep it high-level and outcome-focused",
	AudienceTechnical:       "a technical audience; precise terminology is welcome",
	AudienceCustomer:        "a customer; be helpful and service-oriented",
	AudienceTeam:            "your own team; shared context can be assumed",
	AudienceExternalPartner: "an external partner organization; professional but collaborative",
}

var purposeCatalog = map[Purpose]string{
	PurposeRequest:           "making a request",
	PurposeProposal:          "presenting a proposal",
	PurposeApology:           "offering an apology",
	PurposeThankYou:          "expressing thanks",
	PurposeAnnouncement:      "making an announcement",
	PurposeComplaintResponse: "responding to a complaint",
}

var industryCatalog = map[Industry]string{
	IndustryTechnology: "the technology industry; use fitting vocabulary and conventions",
	IndustryFinance:    "the finance industry; use fitting vocabulary and conventions",
	IndustryHealthcare: "the healthcare industry; use fitting vocabulary and conventions",
	IndustryLegal:      "the legal industry; use fitting vocabulary and conventions",
	IndustryEducation:  "the education sector; use fitting vocabulary and conventions",
	IndustryRetail:     "the retail industry; use fitting vocabulary and conventions",
}

var relationshipCatalog = map[Relationship]string{
	RelationshipManager: "your manager",
	RelationshipReport:  "someone who reports to you",
	RelationshipPeer:    "a peer",
	RelationshipClient:  "a client",
	RelationshipVendor:  "a vendor",
	RelationshipFriend:  "a friendly acquaintance",
}

var responseTypeCatalog = map[ResponseType]string{
	ResponseNewEmail: "a new email (not a reply)",
	ResponseReply:    "a reply to an earlier email",
	ResponseForward:  "a forwarded email with your note on top",
}

var salutationCatalog = map[SalutationStyle]string{
	SalutationDear:  `start with "Dear ..."`,
	SalutationHi:    `start with "Hi ..."`,
	SalutationHello: `start with "Hello ..."`,
	SalutationNone:  "no salutation; start directly with the body",
}

var signOffCatalog = map[SignOffStyle]string{
	SignOffBestRegards: `close with "Best regards"`,
	SignOffSincerely:   `close with "Sincerely"`,
	SignOffThanks:      `close with "Thanks"`,
	SignOffCheers:      `close with "Cheers"`,
	SignOffNone:        "no sign-off",
}
