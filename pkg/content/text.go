package content

// Text is a sanitized field group, one value per language.
type Text struct {
	En string `json:"en" bson:"en"`
	So string `json:"so" bson:"so"`
	Ar string `json:"ar" bson:"ar"`
}

// Get returns the value for lang.
func (t Text) Get(lang Lang) string {
	switch lang {
	case Somali:
		return t.So
	case Arabic:
		return t.Ar
	default:
		return t.En
	}
}

// Set stores v for lang. Unknown languages are ignored.
func (t *Text) Set(lang Lang, v string) {
	switch lang {
	case English:
		t.En = v
	case Somali:
		t.So = v
	case Arabic:
		t.Ar = v
	}
}

// Localize returns the value for lang, falling back to English when it is empty.
func (t Text) Localize(lang Lang) string {
	if v := t.Get(lang); v != "" {
		return v
	}
	return t.En
}

// Input is a raw, untrusted field group. A nil variant means the key was
// absent from the request, which is different from an empty string.
type Input struct {
	En *string
	So *string
	Ar *string
}

// Get returns the raw value for lang, defaulting absent variants to "".
func (in Input) Get(lang Lang) string {
	if p := in.ptr(lang); p != nil {
		return *p
	}
	return ""
}

// Has reports whether the key for lang was present.
func (in Input) Has(lang Lang) bool {
	return in.ptr(lang) != nil
}

// Touched reports whether any language key was present.
func (in Input) Touched() bool {
	return in.En != nil || in.So != nil || in.Ar != nil
}

func (in Input) ptr(lang Lang) *string {
	switch lang {
	case English:
		return in.En
	case Somali:
		return in.So
	case Arabic:
		return in.Ar
	}
	return nil
}
