package constvars

const (
	RegexEmail      = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexNumeric    = `^\d+$`
	RegexUSZIPCode  = `^\d{5}(-\d{4})?$`
	RegexPhoneChars = `^[0-9+().\-\s]+$`
)
