package constvars

const (
	RegexDateYYYYMMDD       = `^\d{4}-\d{2}-\d{2}$`
	RegexHexColorCode       = `^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`
	RegexPhoneNumberGeneral = `^\+[1-9]\d{9,14}$`
)
