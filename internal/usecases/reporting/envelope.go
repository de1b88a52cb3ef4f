// Package reporting monta o envelope de resposta dos relatórios e interpreta o conteúdo gerado por IA.
package reporting

// Envelope agrupa as zonas que todo relatório expõe. Nenhuma zona é omitida.
type Envelope struct {
	Summary        map[string]any
	Breakdown      map[string]any
	FiltersApplied map[string]any
}

func NewEnvelope() *Envelope {
	return &Envelope{
		Summary:        map[string]any{},
		Breakdown:      map[string]any{},
		FiltersApplied: map[string]any{},
	}
}

func (e *Envelope) AddSummary(key string, value any) *Envelope {
	e.Summary[key] = value
	return e
}

func (e *Envelope) AddBreakdown(key string, value any) *Envelope {
	e.Breakdown[key] = value
	return e
}

// Filter registra o parâmetro recebido; ponteiros nil são expostos como null
func (e *Envelope) Filter(key string, value any) *Envelope {
	e.FiltersApplied[key] = value
	return e
}

// Optional converte um ponteiro opcional em valor, preservando nil
func Optional[T any](value *T) any {
	if value == nil {
		return nil
	}
	return *value
}

// Body retorna o envelope com as zonas nomeadas pelo relatório mais os campos extras
func (e *Envelope) Body(summaryKey, breakdownKey string, extra map[string]any) map[string]any {
	body := make(map[string]any, len(extra)+3)
	for k, v := range extra {
		body[k] = v
	}
	body[summaryKey] = e.Summary
	if breakdownKey != "" {
		body[breakdownKey] = e.Breakdown
	}
	body["filters_applied"] = e.FiltersApplied
	return body
}
