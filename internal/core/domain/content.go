package domain

import "time"

// SocialLink is a contact-section link shown on the public board.
type SocialLink struct {
	ID        int64
	Platform  string
	URL       string
	IsVisible bool
}

// AutomationLink is an admin-dashboard shortcut to an external tool.
type AutomationLink struct {
	ID        int64
	Name      string
	URL       string
	IsVisible bool
}

// AboutMe holds the single about section shown on the home page.
type AboutMe struct {
	ID      int64
	Content string
}

// DesignSettings is the singleton theme configuration for the public site.
type DesignSettings struct {
	ID              int64
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	TextColor       string
	ButtonColor     string
	ButtonTextColor string
	FontFamily      string
	HeadingFont     string
	FontSize        string
	LayoutStyle     string
	BorderRadius    string
	UpdatedAt       time.Time
}

// DefaultDesignSettings returns the theme applied before an admin customizes
// anything.
func DefaultDesignSettings() DesignSettings {
	return DesignSettings{
		PrimaryColor:    "#3b82f6",
		SecondaryColor:  "#8b5cf6",
		BackgroundColor: "#ffffff",
		TextColor:       "#1f2937",
		ButtonColor:     "#3b82f6",
		ButtonTextColor: "#ffffff",
		FontFamily:      "Inter",
		HeadingFont:     "Inter",
		FontSize:        "medium",
		LayoutStyle:     "modern",
		BorderRadius:    "medium",
	}
}
