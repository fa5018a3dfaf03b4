package telegram

import (
	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
)

// Client notifies an operator chat about run outcomes. When no bot token is
// configured both methods are no-ops.
type Client interface {
	NotifySuccess(export *domain.Export)
	NotifyFailure(err error)
}
