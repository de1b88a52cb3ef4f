package domain

import (
	"slices"
	"strings"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformGoogle    Platform = "google"
	PlatformTikTok    Platform = "tiktok"
)

// SocialPlatforms são as redes aceitas para publicações
var SocialPlatforms = []Platform{PlatformInstagram, PlatformLinkedIn, PlatformTwitter, PlatformFacebook}

// AdPlatforms são as redes aceitas para campanhas pagas
var AdPlatforms = []Platform{PlatformFacebook, PlatformInstagram, PlatformGoogle, PlatformLinkedIn, PlatformTwitter, PlatformTikTok}

// CreativePlatforms são as redes com especificação de criativos
var CreativePlatforms = []Platform{PlatformFacebook, PlatformInstagram, PlatformGoogle, PlatformLinkedIn, PlatformTwitter}

// Title retorna o nome com a primeira letra maiúscula ("Instagram", "Linkedin")
func (p Platform) Title() string {
	if p == "" {
		return ""
	}
	s := strings.ToLower(string(p))
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseSocialPlatform valida a rede de uma publicação (sensível a maiúsculas)
func ParseSocialPlatform(value string) (Platform, error) {
	return parsePlatform(Platform(value), SocialPlatforms)
}

// ParseAdPlatform valida a rede de uma campanha, ignorando maiúsculas
func ParseAdPlatform(value string) (Platform, error) {
	return parsePlatform(Platform(strings.ToLower(value)), AdPlatforms)
}

// ParseCreativePlatform valida a rede para geração de criativos, ignorando maiúsculas
func ParseCreativePlatform(value string) (Platform, error) {
	return parsePlatform(Platform(strings.ToLower(value)), CreativePlatforms)
}

func parsePlatform(p Platform, allowed []Platform) (Platform, error) {
	if !slices.Contains(allowed, p) {
		return "", NewValidationError("Invalid platform. Must be one of: %s", FormatChoices(allowed))
	}
	return p, nil
}
