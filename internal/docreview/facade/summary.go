package facade

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
)

// NormalizeSummary decides the summary's tag once, at the API boundary.
// A JSON string becomes a trimmed paragraph; a JSON sequence becomes bullets,
// with bare strings wrapped as {text}; anything else violates the string-or-
// sequence contract and fails with ErrUnrecognizedSummaryShape.
func NormalizeSummary(raw json.RawMessage) (*domain.Summary, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, domain.ErrUnrecognizedSummaryShape
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil, domain.ErrUnrecognizedSummaryShape
		}
		return &domain.Summary{Kind: domain.SummaryParagraph, Text: strings.TrimSpace(text)}, nil

	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, domain.ErrUnrecognizedSummaryShape
		}
		items := make([]domain.SummaryBullet, 0, len(elems))
		for _, e := range elems {
			bullet, err := normalizeBullet(e)
			if err != nil {
				return nil, err
			}
			items = append(items, bullet)
		}
		return &domain.Summary{Kind: domain.SummaryBullets, Items: items}, nil

	default:
		return nil, domain.ErrUnrecognizedSummaryShape
	}
}

func normalizeBullet(raw json.RawMessage) (domain.SummaryBullet, error) {
	e := bytes.TrimSpace(raw)
	if len(e) == 0 {
		return domain.SummaryBullet{}, domain.ErrUnrecognizedSummaryShape
	}
	switch e[0] {
	case '"':
		var s string
		if err := json.Unmarshal(e, &s); err != nil {
			return domain.SummaryBullet{}, domain.ErrUnrecognizedSummaryShape
		}
		return domain.SummaryBullet{Text: s}, nil
	case '{':
		var b domain.SummaryBullet
		if err := json.Unmarshal(e, &b); err != nil {
			return domain.SummaryBullet{}, domain.ErrUnrecognizedSummaryShape
		}
		return b, nil
	default:
		return domain.SummaryBullet{}, domain.ErrUnrecognizedSummaryShape
	}
}
