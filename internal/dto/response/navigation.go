package response

type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type NavigationResponse struct {
	Links      []NavLink `json:"links"`
	LoggedInAs string    `json:"logged_in_as,omitempty"`
	CanLogout  bool      `json:"can_logout"`
}
