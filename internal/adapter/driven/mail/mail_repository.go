package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"regexp"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/greenledger/carbon-report-go/internal/domain/repository"
	"github.com/greenledger/carbon-report-go/internal/shared/types"
)

// Validação de formato local@domain.tld. Nenhuma verificação de caixa postal
// além disso — formato inválido falha rápido, antes de qualquer tentativa de
// envio.
var recipientPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// MailRepositoryImpl implementa o MailRepository via SMTP.
type MailRepositoryImpl struct {
	host string
	port int
	from string
}

// NewMailRepository cria o repositório de e-mail. Host vazio usa localhost:25
// e um remetente padrão.
func NewMailRepository(host string, port int, from string) repository.MailRepository {
	if host == "" {
		host = "localhost"
	}
	if port == 0 {
		port = 25
	}
	if from == "" {
		from = "reports@carbon-report.local"
	}
	return &MailRepositoryImpl{host: host, port: port, from: from}
}

// ValidateRecipient aplica o padrão de formato ao endereço.
func ValidateRecipient(address string) error {
	if !recipientPattern.MatchString(address) {
		return fmt.Errorf("%w: %q", types.ErrInvalidRecipient, address)
	}
	return nil
}

// SendReport valida o destinatário, monta a mensagem MIME com o PDF anexado e
// envia. O relatório e o documento já gerados não são afetados por falha aqui.
func (r *MailRepositoryImpl) SendReport(report entity.ReportRecord, attachmentPath, recipient string) error {
	if err := ValidateRecipient(recipient); err != nil {
		return err
	}
	if attachmentPath == "" {
		return types.ErrNoDocumentToMail
	}

	attachment, err := os.ReadFile(attachmentPath)
	if err != nil {
		return fmt.Errorf("error reading attachment: %w", err)
	}

	msg := buildMessage(r.from, recipient, report, filepath.Base(attachmentPath), attachment)

	addr := fmt.Sprintf("%s:%d", r.host, r.port)
	if err := smtp.SendMail(addr, nil, r.from, []string{recipient}, msg); err != nil {
		return fmt.Errorf("error sending report email: %w", err)
	}
	return nil
}

// buildMessage monta um multipart/mixed com corpo em texto e o PDF em base64.
func buildMessage(from, to string, report entity.ReportRecord, filename string, attachment []byte) []byte {
	const boundary = "carbon-report-boundary"

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: Carbon Emissions Report %s - %s\r\n", report.ReportID, report.Organization.CompanyName)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf,
		"Please find attached the greenhouse gas emissions report for %s (reporting year %d).\r\n\r\nReport ID: %s\r\nGenerated: %s\r\n",
		report.Organization.CompanyName, report.ReportingYear, report.ReportID, report.FormattedDate)

	fmt.Fprintf(&buf, "\r\n--%s\r\n", boundary)
	buf.WriteString("Content-Type: application/pdf\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", filename)

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// Linhas de 76 colunas, como manda o transfer encoding.
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	fmt.Fprintf(&buf, "\r\n--%s--\r\n", boundary)

	return buf.Bytes()
}
