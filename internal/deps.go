package internal

import (
	"notesapp/notes-api/internal/service"

	"gorm.io/gorm"
)

// Deps bundles everything handlers need. It is built once at startup
// and passed into every handler, nothing is imported ambiently.
type Deps struct {
	DB     *gorm.DB
	Mailer service.Mailer
	Google service.GoogleVerifier

	// MailOnFailure decides what happens when the passcode email can't
	// be delivered: "propagate" fails the request, "log_and_continue"
	// logs the code and answers as if delivery worked
	MailOnFailure string

	// GoogleLinkPolicy decides what happens when a Google login matches
	// an existing password account by email: "link-by-email" attaches
	// the Google identity, "reject-on-conflict" refuses the login
	GoogleLinkPolicy string
}
