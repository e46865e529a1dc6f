package repository

import (
	"github.com/greenledger/carbon-report-go/internal/domain/entity"
)

// MailRepository sends a generated document to a recipient. Implementations
// must validate the recipient address before any send side effect.
type MailRepository interface {
	SendReport(report entity.ReportRecord, attachmentPath, recipient string) error
}
