package types

import "errors"

var (
	ErrNoInputFile      = errors.New("no input file provided. Use --input to point at a TOML, YAML, or JSON report input")
	ErrInvalidRecipient = errors.New("invalid recipient email address")
	ErrNoDocumentToMail = errors.New("no generated PDF available to attach")
	ErrReportNotFound   = errors.New("no stored report found for the given report ID")
)
