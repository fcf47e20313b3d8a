package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogHandler   blogHandler
	healthHandler healthHandler
}
