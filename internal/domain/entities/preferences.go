package entities

// Role identifies what a session is allowed to do. The role marker is a
// simulated auth scheme: it is written by the login flow and read back on the
// next visit, nothing more.
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleUMKM    Role = "umkm"
	RoleAdmin   Role = "admin"
)

// IsValid checks if the role value is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleVisitor, RoleUMKM, RoleAdmin:
		return true
	}
	return false
}

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid checks if the theme value is one of the defined constants.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Area is a user-selected province/city pair scoping the discovery view.
type Area struct {
	Provinsi string `json:"provinsi"`
	Kota     string `json:"kota"`
}

// DiscoveryFilters is the saved filter state of the public discovery grid.
type DiscoveryFilters struct {
	Kategori []string `json:"kategori"`
	MaxPrice *int     `json:"maxPrice,omitempty"`
	Sort     string   `json:"sort"`
}

// Settings holds the admin back-office preferences.
type Settings struct {
	Theme            Theme  `json:"theme"`
	PaginationSize   int    `json:"paginationSize"`
	DateFormat       string `json:"dateFormat"`
	TimeFormat       string `json:"timeFormat"`
	Language         string `json:"language"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	Notifications    bool   `json:"notifications"`
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() Settings {
	return Settings{
		Theme:          ThemeLight,
		PaginationSize: 10,
		DateFormat:     "DD/MM/YYYY",
		TimeFormat:     "24h",
		Language:       "id",
		Notifications:  true,
	}
}
