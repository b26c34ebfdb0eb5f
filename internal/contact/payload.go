package contact

import "net/url"

const (
	// FormNameKey is the discriminator key the hosting provider's form
	// service uses to route a submission to the right form.
	FormNameKey = "form-name"

	// FormName identifies this form to the hosting provider.
	FormName = "contact"

	// HoneypotField is the hidden input left blank by humans. The provider
	// rejects submissions where it is filled; nothing here checks it.
	HoneypotField = "bot-field"

	// ContentType is the request body encoding.
	ContentType = "application/x-www-form-urlencoded"
)

// Values returns the form values for d, including the discriminator.
func Values(d Draft) url.Values {
	v := url.Values{}
	v.Set(FormNameKey, FormName)
	for _, f := range Fields() {
		v.Set(string(f), d.Get(f))
	}
	return v
}

// Encode serializes d as an application/x-www-form-urlencoded body.
func Encode(d Draft) string {
	return Values(d).Encode()
}
