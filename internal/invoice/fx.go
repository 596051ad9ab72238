package invoice

import (
	"github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/a13312860897-create/invomate-sub001/internal/invoice/repository"
	"github.com/a13312860897-create/invomate-sub001/internal/invoice/service"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(func(repo domain.Repository) reportingdomain.InvoiceRepository { return repo }),
	fx.Provide(service.NewService),
)
