package legacy

// BannerOutput for GET /
type BannerOutput struct {
	Body Banner
}

// StatusCheckOutput for POST /status
type StatusCheckOutput struct {
	Body StatusCheck
}

// StatusListOutput for GET /status
type StatusListOutput struct {
	Body []StatusCheck
}
