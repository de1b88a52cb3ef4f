package domain

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

type AssetType string

const (
	AssetLogo     AssetType = "logo"
	AssetImage    AssetType = "image"
	AssetVideo    AssetType = "video"
	AssetDocument AssetType = "document"
	AssetTemplate AssetType = "template"
	AssetFont     AssetType = "font"
)

var AssetTypes = []AssetType{AssetLogo, AssetImage, AssetVideo, AssetDocument, AssetTemplate, AssetFont}

type AssetStatus string

const (
	AssetStatusActive  AssetStatus = "active"
	AssetStatusDeleted AssetStatus = "deleted"
)

func ParseAssetType(value string) (AssetType, error) {
	t := AssetType(value)
	if !slices.Contains(AssetTypes, t) {
		return "", NewValidationError("Invalid asset type. Must be one of: %s", FormatChoices(AssetTypes))
	}
	return t, nil
}

// extensionTypes mapeia extensões de arquivo para o tipo de ativo inferido no upload
var extensionTypes = map[string]AssetType{
	"jpg": AssetImage, "jpeg": AssetImage, "png": AssetImage, "gif": AssetImage, "svg": AssetImage,
	"mp4": AssetVideo, "mov": AssetVideo, "avi": AssetVideo, "webm": AssetVideo,
	"pdf": AssetDocument, "doc": AssetDocument, "docx": AssetDocument, "txt": AssetDocument,
	"ttf": AssetFont, "otf": AssetFont, "woff": AssetFont, "woff2": AssetFont,
}

// InferAssetType deduz o tipo pela extensão, usando document como padrão
func InferAssetType(filename string) AssetType {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return AssetDocument
}

type BrandAsset struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        AssetType      `json:"type"`
	URL         string         `json:"url"`
	Tags        []string       `json:"tags"`
	Description *string        `json:"description"`
	FileSize    string         `json:"file_size"`
	UsageCount  int            `json:"usage_count"`
	Status      AssetStatus    `json:"status"`
	Filename    string         `json:"filename,omitempty"`
	ContentType string         `json:"content_type,omitempty"`
	Checksum    string         `json:"checksum,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	LastUsed    *time.Time     `json:"last_used"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty"`
}

// AssetDraft é a entrada de cadastro de ativo por URL
type AssetDraft struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	Description *string  `json:"description"`
}

func NewBrandAsset(draft AssetDraft) (*BrandAsset, error) {
	assetType, err := ParseAssetType(draft.Type)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(draft.Name) == "" {
		return nil, NewValidationError("Name is required")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}

	return &BrandAsset{
		ID:          id,
		Name:        draft.Name,
		Type:        assetType,
		URL:         draft.URL,
		Tags:        tags,
		Description: draft.Description,
		FileSize:    "Unknown",
		Status:      AssetStatusActive,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// AssetUpdate são as alterações de metadados aceitas em um ativo
type AssetUpdate struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	URL         *string  `json:"url"`
	Tags        []string `json:"tags"`
	Description *string  `json:"description"`
}

// Changes valida a atualização e retorna somente os campos informados
func (u AssetUpdate) Changes() (map[string]any, error) {
	changes := make(map[string]any)

	if u.Name != nil {
		if strings.TrimSpace(*u.Name) == "" {
			return nil, NewValidationError("Name is required")
		}
		changes["name"] = *u.Name
	}
	if u.Type != nil {
		if _, err := ParseAssetType(*u.Type); err != nil {
			return nil, err
		}
		changes["type"] = *u.Type
	}
	if u.URL != nil {
		changes["url"] = *u.URL
	}
	if u.Tags != nil {
		changes["tags"] = u.Tags
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}

	return changes, nil
}

func (a *BrandAsset) Apply(u AssetUpdate) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Type != nil {
		a.Type = AssetType(*u.Type)
	}
	if u.URL != nil {
		a.URL = *u.URL
	}
	if u.Tags != nil {
		a.Tags = u.Tags
	}
	if u.Description != nil {
		a.Description = u.Description
	}
}

// MarkDeleted faz a exclusão lógica do ativo
func (a *BrandAsset) MarkDeleted(at time.Time) {
	a.Status = AssetStatusDeleted
	a.DeletedAt = &at
}

// FormatFileSize formata bytes como "12.3KB" abaixo de 1MB ou "4.5MB" acima
func FormatFileSize(size int64) string {
	if size < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(size)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(size)/(1024*1024))
}

// FileSizeMegabytes converte textos como "12KB", "1.2MB" ou "2GB" em megabytes
func FileSizeMegabytes(size string) float64 {
	units := []struct {
		suffix string
		factor float64
	}{
		{"GB", 1024},
		{"MB", 1},
		{"KB", 1.0 / 1024},
	}

	value := strings.ToUpper(strings.TrimSpace(size))
	for _, unit := range units {
		if strings.HasSuffix(value, unit.suffix) {
			n, err := strconv.ParseFloat(strings.TrimSuffix(value, unit.suffix), 64)
			if err != nil {
				return 0
			}
			return n * unit.factor
		}
	}
	return 0
}

// AssetFilter seleciona ativos por tipo e por qualquer uma das tags
type AssetFilter struct {
	Type  *AssetType
	Tags  []string
	Limit int
}

func (f AssetFilter) Match(a BrandAsset) bool {
	if a.Status == AssetStatusDeleted {
		return false
	}
	if f.Type != nil && a.Type != *f.Type {
		return false
	}
	if len(f.Tags) > 0 && !slices.ContainsFunc(f.Tags, func(tag string) bool {
		return slices.Contains(a.Tags, tag)
	}) {
		return false
	}
	return true
}

// ParseTagList separa tags informadas como "a, b,c" descartando vazias
func ParseTagList(value string) []string {
	var tags []string
	for _, tag := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
