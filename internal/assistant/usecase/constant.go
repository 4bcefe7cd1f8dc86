package usecase

// Prompts. The platform serves French-speaking trainers and beneficiaries.
const (
	PromptSystem = "Tu es l'assistant de la plateforme de gestion des formations. " +
		"Tu aides les administrateurs, les formateurs et les bénéficiaires. " +
		"Réponds en français, de manière claire et concise."

	PromptFileAnalysisNote = " Des fichiers sont fournis en contexte : analyse-les attentivement avant de répondre."

	PromptFileBlock      = "### START FILE %d: %s ###\n%s\n### END FILE %d: %s ###\n\n"
	PromptQuestionPrefix = "Question: "
)

// DefaultMaxAttempts bounds the upstream retry loop (attempts total,
// including the first).
const DefaultMaxAttempts = 3
