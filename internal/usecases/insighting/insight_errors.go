package insighting

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrGenerateStrategy   = errors.New("error generating strategy")
	ErrAnalyzeCompetitors = errors.New("error analyzing competitors")
	ErrForecastROI        = errors.New("error forecasting ROI")
	ErrSaveInsight        = errors.New("error saving insight")
)

// wrapGeneration anota a falha do modelo com a etapa que a originou
func wrapGeneration(err error, stage string) error {
	return pkgerrors.Wrap(err, "falha na geração ("+stage+")")
}
