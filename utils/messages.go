package utils

import (
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
)

// DetectionMessages resolves user-facing detection texts from the i18n
// bundle, falling back to a fixed English string when a catalog entry
// is missing for the requested language.
type DetectionMessages struct {
	fallback string
}

func NewDetectionMessages(fallback string) *DetectionMessages {
	return &DetectionMessages{fallback: fallback}
}

func (m *DetectionMessages) NotAvailable(lang string) string {
	lang = strings.ReplaceAll(strings.ToLower(lang), "-", "_")

	loc := NewLocalizer(lang)
	message, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "detection.not_available",
	})
	if err != nil {
		log.WithError(err).Warnf("can not localize detection message")
		return m.fallback
	}
	return message
}
