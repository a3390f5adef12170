package draftControllers

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/junaidrashid-git/orderdesk/orderform"
)

var textPolicy = bluemonday.StrictPolicy()

// cleanText strips markup from operator input and keeps the plain text.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func cleanPtr(s *string) {
	if s != nil {
		*s = cleanText(*s)
	}
}

func cleanPatch(p *orderform.Patch) {
	cleanPtr(p.MobileNumber)
	cleanPtr(p.FirstName)
	cleanPtr(p.LastName)
	cleanPtr(p.Email)
	cleanPtr(p.SearchMobileNumber)
	cleanPtr(p.WhatsAppNumber)
	cleanPtr(p.CouponCode)
}
