package weather

import "fmt"

const iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

// IconURL returns the CDN address of the 2x icon for an upstream icon code.
func IconURL(code string) string {
	return fmt.Sprintf(iconURLTemplate, code)
}
