package contact

import (
	"net/http"

	"go.uber.org/zap"
)

// Redirect targets for the form fallback.
const (
	SentLocation    = "/?sent=1#contact"
	MissingLocation = "/?error=missing#contact"
)

// Handler serves POST /contact for browsers without a live session. The
// message is accepted and dropped; the visitor is redirected back to the
// page, which shows the confirmation.
func Handler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}

		d := Data{
			Name:    r.PostFormValue(string(FieldName)),
			Email:   r.PostFormValue(string(FieldEmail)),
			Message: r.PostFormValue(string(FieldMessage)),
		}
		if err := d.Validate(); err != nil {
			logger.Debug("contact form rejected", zap.Error(err))
			http.Redirect(w, r, MissingLocation, http.StatusSeeOther)
			return
		}

		LogAccepted(logger, "form", d)
		http.Redirect(w, r, SentLocation, http.StatusSeeOther)
	}
}

// LogAccepted records an accepted message. Only field lengths are logged.
func LogAccepted(logger *zap.Logger, source string, d Data) {
	logger.Debug("contact message accepted",
		zap.String("source", source),
		zap.Int("name_len", len(d.Name)),
		zap.Int("email_len", len(d.Email)),
		zap.Int("message_len", len(d.Message)),
	)
}
