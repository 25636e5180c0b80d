package email

// replySchema fixes the machine-parseable shape every preset demands from the
// provider. The parser in parse.go depends on these field names.
const replySchema = `Respond with a JSON object containing exactly these fields:
{
  "subject": "Your primary subject line here",
  "subject_variants": ["Alternative subject 1", "Alternative subject 2"],
  "body": "Your email body here"
}

IMPORTANT RULES:
- NEVER use emojis anywhere in the email (subject or body)
- Use proper email formatting with blank lines:
  - Blank line after the greeting/salutation
  - Blank line between paragraphs
  - Blank line before the sign-off
- Use \n for newlines in the JSON string
- Provide exactly 2 alternative subject lines in subject_variants`

var presetTemplates = map[Preset]string{
	PresetGeneral: `You are an expert email writer. Generate professional emails based on the given parameters.
NEVER use emojis in any part of the email.

` + replySchema,

	PresetApplication: `You are an expert at writing job and opportunity applications. Write compelling application emails that:
- Open with a strong, specific hook showing genuine interest
- Highlight relevant qualifications concisely
- Show knowledge of the company/opportunity
- Include a clear call to action
- Maintain professionalism while showing personality
- NEVER use emojis

` + replySchema,

	PresetIntroduction: `You are an expert at writing introduction emails. Write warm, professional introductions that:
- Establish who you are clearly and memorably
- Explain the context or connection
- State your purpose naturally
- Make it easy for the recipient to respond
- Keep it brief but personable
- NEVER use emojis

` + replySchema,

	PresetColdEmail: `You are an expert at writing cold outreach emails. Write emails that:
- Hook the reader in the first line with something relevant to them
- Provide immediate value or insight
- Keep it extremely concise (under 100 words for body)
- Have a single, clear ask
- Avoid sounding salesy or generic
- Feel personal, not templated
- NEVER use emojis

` + replySchema,

	PresetFollowUp: `You are an expert at writing follow-up emails. Write follow-ups that:
- Reference the previous interaction naturally
- Add new value rather than just "checking in"
- Keep it shorter than the original email
- Make responding easy
- Maintain appropriate urgency without being pushy
- NEVER use emojis

` + replySchema,
}

// SystemRole returns the system template for a preset. An unknown preset
// falls back to the general template; this is the single sanctioned fallback
// in the pipeline, everything else fails at validation.
func SystemRole(p Preset) string {
	if t, ok := presetTemplates[p]; ok {
		return t
	}
	return presetTemplates[PresetGeneral]
}
