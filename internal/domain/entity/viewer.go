package entity

// Viewer is the authenticated retailer using the dashboard. The access token is forwarded
// to the platform backend, which owns authentication.
type Viewer struct {
	ID          string
	AccessToken string
}
