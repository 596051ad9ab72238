package reporting

import (
	"github.com/a13312860897-create/invomate-sub001/internal/reporting/service"
	"go.uber.org/fx"
)

var Module = fx.Module("reporting.service",
	fx.Provide(service.NewService),
)
