package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Gig     *GigHandler
	Order   *OrderHandler
	Review  *ReviewHandler
	Message *MessageHandler
}
