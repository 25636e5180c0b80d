// Package email implements the parameter-composition engine: it turns a set
// of independent user-supplied dials into an ordered instruction block for a
// text-generation provider, and decodes the provider's structured reply.
package email

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest wraps all construction-time validation failures.
var ErrInvalidRequest = errors.New("invalid generation request")

// Preset selects the system-role template and output-format rules.
type Preset string

const (
	PresetGeneral      Preset = "general"
	PresetApplication  Preset = "application"
	PresetIntroduction Preset = "introduction"
	PresetColdEmail    Preset = "cold_email"
	PresetFollowUp     Preset = "follow_up"
)

// SalutationStyle controls how the email opens.
type SalutationStyle string

const (
	SalutationAuto  SalutationStyle = "auto"
	SalutationDear  SalutationStyle = "dear"
	SalutationHi    SalutationStyle = "hi"
	SalutationHello SalutationStyle = "hello"
	SalutationNone  SalutationStyle = "none"
)

// SignOffStyle controls how the email closes.
type SignOffStyle string

const (
	SignOffAuto        SignOffStyle = "auto"
	SignOffBestRegards SignOffStyle = "best_regards"
	SignOffSincerely   SignOffStyle = "sincerely"
	SignOffThanks      SignOffStyle = "thanks"
	SignOffCheers      SignOffStyle = "cheers"
	SignOffNone        SignOffStyle = "none"
)

// Language selects the output language. English is the default and produces
// no directive.
type Language string

const (
	LanguageEnglish    Language = "english"
	LanguageSpanish    Language = "spanish"
	LanguageFrench     Language = "french"
	LanguageGerman     Language = "german"
	LanguagePortuguese Language = "portuguese"
	LanguageItalian    Language = "italian"
)

// Audience describes who will read the email.
type Audience string

const (
	AudienceGeneral         Audience = "general"
	AudienceExecutive       Audience = "executive"
	AudienceTechnical       Audience = "technical"
	AudienceCustomer        Audience = "customer"
	AudienceTeam            Audience = "team"
	AudienceExternalPartner Audience = "external_partner"
)

// Purpose describes why the email is being written.
type Purpose string

const (
	PurposeGeneral           Purpose = "general"
	PurposeRequest           Purpose = "request"
	PurposeProposal          Purpose = "proposal"
	PurposeApology           Purpose = "apology"
	PurposeThankYou          Purpose = "thank_you"
	PurposeAnnouncement      Purpose = "announcement"
	PurposeComplaintResponse Purpose = "complaint_response"
)

// ResponseType distinguishes new emails from replies and forwards.
type ResponseType string

const (
	ResponseNewEmail ResponseType = "new_email"
	ResponseReply    ResponseType = "reply"
	ResponseForward  ResponseType = "forward"
)

// Industry colors vocabulary and conventions.
type Industry string

const (
	IndustryGeneral    Industry = "general"
	IndustryTechnology Industry = "technology"
	IndustryFinance    Industry = "finance"
	IndustryHealthcare Industry = "healthcare"
	IndustryLegal      Industry = "legal"
	IndustryEducation  Industry = "education"
	IndustryRetail     Industry = "retail"
)

// Relationship describes how the sender relates to the recipient.
type Relationship string

const (
	RelationshipUnknown Relationship = "unknown"
	RelationshipManager Relationship = "manager"
	RelationshipReport  Relationship = "report"
	RelationshipPeer    Relationship = "peer"
	RelationshipClient  Relationship = "client"
	RelationshipVendor  Relationship = "vendor"
	RelationshipFriend  Relationship = "friend"
)

// Request carries every dial for one generation. Sliders are integers in
// [0,100]; categorical fields are closed sets. Validate rejects anything
// outside those bounds, so a validated Request never needs re-checking
// downstream.
type Request struct {
	Preset Preset `json:"preset"`

	Tone        int `json:"tone"`
	Length      int `json:"length"`
	Temperature int `json:"temperature"`
	Urgency     int `json:"urgency"`
	CTAStrength int `json:"cta_strength"`
	Politeness  int `json:"politeness"`

	Salutation   SalutationStyle `json:"salutation_style"`
	SignOff      SignOffStyle    `json:"sign_off_style"`
	Language     Language        `json:"language"`
	Audience     Audience        `json:"audience_type"`
	Purpose      Purpose         `json:"purpose"`
	ResponseType ResponseType    `json:"response_type"`
	Industry     Industry        `json:"industry"`
	Relationship Relationship    `json:"recipient_relationship"`

	IncomingEmail      string `json:"incoming_email"`
	RecipientName      string `json:"recipient_name"`
	SenderName         string `json:"sender_name"`
	CustomInstructions string `json:"custom_instructions"`
	Keywords           string `json:"keywords_to_include"`

	UseLists             bool `json:"use_lists"`
	IncludeAttachmentRef bool `json:"include_attachment_reference"`
}

// DefaultRequest returns a Request with every slider centered and every
// categorical field at its documented default. Decoding a JSON payload over
// this value gives absent fields their defaults instead of Go zero values.
func DefaultRequest() Request {
	return Request{
		Preset:       PresetGeneral,
		Tone:         50,
		Length:       50,
		Temperature:  70,
		Urgency:      0,
		CTAStrength:  50,
		Politeness:   50,
		Salutation:   SalutationAuto,
		SignOff:      SignOffAuto,
		Language:     LanguageEnglish,
		Audience:     AudienceGeneral,
		Purpose:      PurposeGeneral,
		ResponseType: ResponseNewEmail,
		Industry:     IndustryGeneral,
		Relationship: RelationshipUnknown,
	}
}

// Validate checks every slider range and every categorical value. It fails
// fast: an out-of-range or unknown value is reported to the caller rather
// than clamped or substituted.
func (r Request) Validate() error {
	sliders := []struct {
		name  string
		value int
	}{
		{"tone", r.Tone},
		{"length", r.Length},
		{"temperature", r.Temperature},
		{"urgency", r.Urgency},
		{"cta_strength", r.CTAStrength},
		{"politeness", r.Politeness},
	}
	for _, s := range sliders {
		if s.value < 0 || s.value > 100 {
			return fmt.Errorf("%w: %s must be in [0,100], got %d", ErrInvalidRequest, s.name, s.value)
		}
	}

	enums := []struct {
		name  string
		value string
		ok    bool
	}{
		{"preset", string(r.Preset), r.Preset.valid()},
		{"salutation_style", string(r.Salutation), r.Salutation.valid()},
		{"sign_off_style", string(r.SignOff), r.SignOff.valid()},
		{"language", string(r.Language), r.Language.valid()},
		{"audience_type", string(r.Audience), r.Audience.valid()},
		{"purpose", string(r.Purpose), r.Purpose.valid()},
		{"response_type", string(r.ResponseType), r.ResponseType.valid()},
		{"industry", string(r.Industry), r.Industry.valid()},
		{"recipient_relationship", string(r.Relationship), r.Relationship.valid()},
	}
	for _, e := range enums {
		if !e.ok {
			return fmt.Errorf("%w: unknown %s %q", ErrInvalidRequest, e.name, e.value)
		}
	}

	return nil
}

func (p Preset) valid() bool {
	switch p {
	case PresetGeneral, PresetApplication, PresetIntroduction, PresetColdEmail, PresetFollowUp:
		return true
	}
	return false
}

func (s SalutationStyle) valid() bool {
	switch s {
	case SalutationAuto, SalutationDear, SalutationHi, SalutationHello, SalutationNone:
		return true
	}
	return false
}

func (s SignOffStyle) valid() bool {
	switch s {
	case SignOffAuto, SignOffBestRegards, SignOffSincerely, SignOffThanks, SignOffCheers, SignOffNone:
		return true
	}
	return false
}

func (l Language) valid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman, LanguagePortuguese, LanguageItalian:
		return true
	}
	return false
}

func (a Audience) valid() bool {
	switch a {
	case AudienceGeneral, AudienceExecutive, AudienceTechnical, AudienceCustomer, AudienceTeam, AudienceExternalPartner:
		return true
	}
	return false
}

func (p Purpose) valid() bool {
	switch p {
	case PurposeGeneral, PurposeRequest, PurposeProposal, PurposeApology, PurposeThankYou, PurposeAnnouncement, PurposeComplaintResponse:
		return true
	}
	return false
}

func (r ResponseType) valid() bool {
	switch r {
	case ResponseNewEmail, ResponseReply, ResponseForward:
		return true
	}
	return false
}

func (i Industry) valid() bool {
	switch i {
	case IndustryGeneral, IndustryTechnology, IndustryFinance, IndustryHealthcare, IndustryLegal, IndustryEducation, IndustryRetail:
		return true
	}
	return false
}

func (r Relationship) valid() bool {
	switch r {
	case RelationshipUnknown, RelationshipManager, RelationshipReport, RelationshipPeer, RelationshipClient, RelationshipVendor, RelationshipFriend:
		return true
	}
	return false
}

// Options lists every preset and categorical choice so the transport layer
// can expose them to form builders without duplicating the closed sets.
type Options struct {
	Presets       []Preset          `json:"presets"`
	Salutations   []SalutationStyle `json:"salutation_styles"`
	SignOffs      []SignOffStyle    `json:"sign_off_styles"`
	Languages     []Language        `json:"languages"`
	Audiences     []Audience        `json:"audience_types"`
	Purposes      []Purpose         `json:"purposes"`
	ResponseTypes []ResponseType    `json:"response_types"`
	Industries    []Industry        `json:"industries"`
	Relationships []Relationship    `json:"recipient_relationships"`
}

// AllOptions returns the closed sets in declaration order.
func AllOptions() Options {
	return Options{
		Presets:       []Preset{PresetGeneral, PresetApplication, PresetIntroduction, PresetColdEmail, PresetFollowUp},
		Salutations:   []SalutationStyle{SalutationAuto, SalutationDear, SalutationHi, SalutationHello, SalutationNone},
		SignOffs:      []SignOffStyle{SignOffAuto, SignOffBestRegards, SignOffSincerely, SignOffThanks, SignOffCheers, SignOffNone},
		Languages:     []Language{LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman, LanguagePortuguese, LanguageItalian},
		Audiences:     []Audience{AudienceGeneral, AudienceExecutive, AudienceTechnical, AudienceCustomer, AudienceTeam, AudienceExternalPartner},
		Purposes:      []Purpose{PurposeGeneral, PurposeRequest, PurposeProposal, PurposeApology, PurposeThankYou, PurposeAnnouncement, PurposeComplaintResponse},
		ResponseTypes: []ResponseType{ResponseNewEmail, ResponseReply, ResponseForward},
		Industries:    []Industry{IndustryGeneral, IndustryTechnology, IndustryFinance, IndustryHealthcare, IndustryLegal, IndustryEducation, IndustryRetail},
		Relationships: []Relationship{RelationshipUnknown, RelationshipManager, RelationshipReport, RelationshipPeer, RelationshipClient, RelationshipVendor, RelationshipFriend},
	}
}
