package content

// Lang is a supported content language.
type Lang string

const (
	English Lang = "en"
	Somali  Lang = "so"
	Arabic  Lang = "ar"
)

// Languages lists the supported content languages in canonical order.
var Languages = []Lang{English, Somali, Arabic}

// Valid reports whether l is a supported content language.
func (l Lang) Valid() bool {
	switch l {
	case English, Somali, Arabic:
		return true
	}
	return false
}

func (l Lang) String() string {
	return string(l)
}
