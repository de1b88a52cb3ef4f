package reporting

import "time"

// Valores usados quando a resposta do modelo não pode ser aproveitada
var (
	DegradedHashtags = []string{"#business", "#ai", "#growth"}
	ErrorHashtags    = []string{"#AI", "#Business", "#Innovation", "#Growth"}
)

const (
	degradedEngagement = 7
	errorEngagement    = 6
	titlePreviewLength = 50

	errorTitle   = "AI-Powered Business Growth"
	errorContent = "Discover how AI is transforming businesses like yours! 🚀 #AI #Business #Innovation"
	errorNotice  = "Fallback content due to API error"
)

// SocialContent é o conteúdo de publicação gerado por IA
type SocialContent struct {
	Title               string    `json:"title"`
	Content             string    `json:"content"`
	Hashtags            []string  `json:"hashtags"`
	Platform            string    `json:"platform"`
	Tone                string    `json:"tone"`
	EstimatedEngagement float64   `json:"estimated_engagement"`
	GeneratedAt         time.Time `json:"generated_at"`
	Degraded            bool      `json:"degraded,omitempty"`
	Error               string    `json:"error,omitempty"`
}

// ContentRequest identifica o pedido que originou o conteúdo
type ContentRequest struct {
	Prompt   string
	Platform string
	Tone     string
}

// DegradedContent embala o texto bruto do modelo quando ele não veio em JSON
func DegradedContent(req ContentRequest, raw string, now time.Time) SocialContent {
	return SocialContent{
		Title:               truncateRunes(req.Prompt, titlePreviewLength) + "...",
		Content:             raw,
		Hashtags:            append([]string(nil), DegradedHashtags...),
		Platform:            req.Platform,
		Tone:                req.Tone,
		EstimatedEngagement: degradedEngagement,
		GeneratedAt:         now,
		Degraded:            true,
	}
}

// ErrorContent é o conteúdo fixo usado quando a chamada ao modelo falha
func ErrorContent(req ContentRequest, now time.Time) SocialContent {
	return SocialContent{
		Title:               errorTitle,
		Content:             errorContent,
		Hashtags:            append([]string(nil), ErrorHashtags...),
		Platform:            req.Platform,
		Tone:                req.Tone,
		EstimatedEngagement: errorEngagement,
		GeneratedAt:         now,
		Degraded:            true,
		Error:               errorNotice,
	}
}

// generatedContent é o formato pedido ao modelo
type generatedContent struct {
	Title               string   `json:"title"`
	Content             string   `json:"content"`
	Hashtags            []string `json:"hashtags"`
	Platform            string   `json:"platform"`
	Tone                string   `json:"tone"`
	EstimatedEngagement float64  `json:"estimated_engagement"`
}

// ResolveContent aplica a política de interpretação: JSON válido é aceito como está,
// texto livre vira conteúdo degradado
func ResolveContent(req ContentRequest, raw string, now time.Time) SocialContent {
	parsed, err := ParseGenerated[generatedContent](raw)
	if err != nil {
		return DegradedContent(req, raw, now)
	}

	content := SocialContent{
		Title:               parsed.Title,
		Content:             parsed.Content,
		Hashtags:            parsed.Hashtags,
		Platform:            parsed.Platform,
		Tone:                parsed.Tone,
		EstimatedEngagement: parsed.EstimatedEngagement,
		GeneratedAt:         now,
	}
	if content.Platform == "" {
		content.Platform = req.Platform
	}
	if content.Tone == "" {
		content.Tone = req.Tone
	}
	if content.Hashtags == nil {
		content.Hashtags = []string{}
	}
	return content
}

// Preview corta o texto em n caracteres e acrescenta reticências
func Preview(text string, n int) string {
	return truncateRunes(text, n) + "..."
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
