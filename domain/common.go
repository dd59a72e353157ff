package domain

const (
	DateLayout = "2006-01-02"

	ServiceName    = "Genie Food Expiry Tracker API"
	ServiceVersion = "1.0.0"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageRouteNotFound        = "route not found"
	MessageInternalServerError  = "internal server error"
	MessageTooManyRequests      = "too many requests from this IP, please try again later"
)
