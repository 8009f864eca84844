package core

type Option struct {
	Code  string
	Label string
	Icon  string
}

var AvailableLanguages = []Option{
	{Code: "en", Label: "English", Icon: "🇺🇸"},
	{Code: "ar", Label: "العربية", Icon: "🇸🇦"},
	{Code: "hi", Label: "हिन्दी", Icon: "🇮🇳"},
	{Code: "id", Label: "Indonesia", Icon: "🇮🇩"},
}

var AvailableGenders = []Option{
	{Code: "Male", Label: "btn_male", Icon: "👨"},
	{Code: "Female", Label: "btn_female", Icon: "👩"},
	{Code: "Anonymous", Label: "btn_anonymous", Icon: "🎭"},
}

var AvailableContinents = []Option{
	{Code: "AF", Label: "Africa", Icon: "🌍"},
	{Code: "AN", Label: "Antarctica", Icon: "🧊"},
	{Code: "AS", Label: "Asia", Icon: "🌏"},
	{Code: "EU", Label: "Europe", Icon: "🌍"},
	{Code: "NA", Label: "North America", Icon: "🌎"},
	{Code: "OC", Label: "Oceania", Icon: "🌏"},
	{Code: "SA", Label: "South America", Icon: "🌎"},
}

func contains(opts []Option, code string) bool {
	for _, o := range opts {
		if o.Code == code {
			return true
		}
	}
	return false
}

func ValidLanguage(code string) bool  { return contains(AvailableLanguages, code) }
func ValidGender(code string) bool    { return contains(AvailableGenders, code) }
func ValidContinent(code string) bool { return contains(AvailableContinents, code) }

// Age bounds are exclusive: anything outside (0, 100) is rejected.
func ValidAge(age int) bool { return age > 0 && age < 100 }
