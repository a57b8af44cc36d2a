package layouts

// AppName is the product name shown in every title.
const AppName = "Online Deník"

// CalculateTitle builds the document title for a page.
func CalculateTitle(title string) string {
	if title != "" && title != AppName {
		return title + " - " + AppName
	}
	return AppName
}
