package llm

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider returns an OpenAI-compatible provider pointed at
// OpenRouter. Model ids such as "google/gemini-2.0-flash-001" are passed
// through unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	return newOpenAICompatible(ProviderOpenRouter, cfg.APIKey, baseURL, cfg.Model)
}
