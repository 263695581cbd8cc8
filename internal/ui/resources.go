package ui

import (
	"fyne.io/fyne/v2"
)

// AppIcon is looked up next to the executable's working directory
const AppIcon = "ytgrab.png"

// LoadLogoResource loads the logo from AppIcon. Builds without the file run without a logo.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
